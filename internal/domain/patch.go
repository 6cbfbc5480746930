package domain

import "time"

// PropertyPatch is a staged partial edit to a property. Every field is a
// pointer so "absent" and "set to zero" are distinguishable, the struct stays
// comparable, and identity plus creation timestamp are unrepresentable: a
// patch can never overwrite them.
type PropertyPatch struct {
	Title         *string    `json:"title,omitempty"`
	TitleAr       *string    `json:"titleAr,omitempty"`
	Category      *Category  `json:"category,omitempty"`
	Status        *Status    `json:"status,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	PriceType     *PriceType `json:"priceType,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	Bathrooms     *int       `json:"bathrooms,omitempty"`
	Area          *float64   `json:"area,omitempty"`
	Agent         *string    `json:"agent,omitempty"`
	Image         *string    `json:"image,omitempty"`
	Description   *string    `json:"description,omitempty"`
	DescriptionAr *string    `json:"descriptionAr,omitempty"`

	FurnishingType             *FurnishingType `json:"furnishingType,omitempty"`
	Size                       *float64        `json:"size,omitempty"`
	PropertyAge                *int            `json:"propertyAge,omitempty"`
	AvailableFrom              *time.Time      `json:"availableFrom,omitempty"`
	ComplianceType             *ComplianceType `json:"complianceType,omitempty"`
	ListingAdvertisementNumber *string         `json:"listingAdvertisementNumber,omitempty"`
	ProjectStatus              *ProjectStatus  `json:"projectStatus,omitempty"`
	Developer                  *string         `json:"developer,omitempty"`
	UnitNumber                 *string         `json:"unitNumber,omitempty"`
	FloorNumber                *string         `json:"floorNumber,omitempty"`
	ParkingSlots               *int            `json:"parkingSlots,omitempty"`
	Downpayment                *float64        `json:"downpayment,omitempty"`
	NumberOfCheques            *int            `json:"numberOfCheques,omitempty"`
	Amenities                  *[]string       `json:"amenities,omitempty"`

	AssignedAgentID *string `json:"assignedAgentId,omitempty"`
}

// IsEmpty reports whether the patch sets no fields at all.
func (p *PropertyPatch) IsEmpty() bool {
	return p == nil || *p == PropertyPatch{}
}

// ApplyTo overlays the patch onto prop field by field. Only set fields win;
// ID, CreatedAt and the workflow/portal bookkeeping fields are outside the
// patch's reach by construction.
func (p *PropertyPatch) ApplyTo(prop *Property) {
	if p == nil {
		return
	}
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.TitleAr != nil {
		prop.TitleAr = p.TitleAr
	}
	if p.Category != nil {
		prop.Category = *p.Category
	}
	if p.Status != nil {
		prop.Status = *p.Status
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.PriceType != nil {
		prop.PriceType = *p.PriceType
	}
	if p.Location != nil {
		prop.Location = *p.Location
	}
	if p.Bedrooms != nil {
		prop.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		prop.Bathrooms = *p.Bathrooms
	}
	if p.Area != nil {
		prop.Area = *p.Area
	}
	if p.Agent != nil {
		prop.Agent = *p.Agent
	}
	if p.Image != nil {
		prop.Image = p.Image
	}
	if p.Description != nil {
		prop.Description = p.Description
	}
	if p.DescriptionAr != nil {
		prop.DescriptionAr = p.DescriptionAr
	}
	if p.FurnishingType != nil {
		prop.FurnishingType = *p.FurnishingType
	}
	if p.Size != nil {
		prop.Size = p.Size
	}
	if p.PropertyAge != nil {
		prop.PropertyAge = p.PropertyAge
	}
	if p.AvailableFrom != nil {
		prop.AvailableFrom = p.AvailableFrom
	}
	if p.ComplianceType != nil {
		prop.ComplianceType = *p.ComplianceType
	}
	if p.ListingAdvertisementNumber != nil {
		prop.ListingAdvertisementNumber = p.ListingAdvertisementNumber
	}
	if p.ProjectStatus != nil {
		prop.ProjectStatus = *p.ProjectStatus
	}
	if p.Developer != nil {
		prop.Developer = p.Developer
	}
	if p.UnitNumber != nil {
		prop.UnitNumber = p.UnitNumber
	}
	if p.FloorNumber != nil {
		prop.FloorNumber = p.FloorNumber
	}
	if p.ParkingSlots != nil {
		prop.ParkingSlots = *p.ParkingSlots
	}
	if p.Downpayment != nil {
		prop.Downpayment = p.Downpayment
	}
	if p.NumberOfCheques != nil {
		prop.NumberOfCheques = p.NumberOfCheques
	}
	if p.Amenities != nil {
		prop.Amenities = *p.Amenities
	}
	if p.AssignedAgentID != nil {
		prop.AssignedAgentID = p.AssignedAgentID
	}
}
