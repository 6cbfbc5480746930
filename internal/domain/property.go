package domain

import "time"

// Category classifies a listing by sales channel.
type Category string

const (
	CategoryRental Category = "rental"
	CategorySale   Category = "sale"
	CategoryLuxury Category = "luxury"
)

// Status is the market status of a listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
)

// ApprovalStatus tracks where a property's staged edits sit in the review cycle.
type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PriceType distinguishes sale prices from rental periods.
type PriceType string

const (
	PriceSale    PriceType = "sale"
	PriceYearly  PriceType = "yearly"
	PriceMonthly PriceType = "monthly"
	PriceWeekly  PriceType = "weekly"
	PriceDaily   PriceType = "daily"
)

// FurnishingType describes the furnishing state required by the portals.
type FurnishingType string

const (
	FurnishingUnfurnished   FurnishingType = "unfurnished"
	FurnishingSemiFurnished FurnishingType = "semi-furnished"
	FurnishingFurnished     FurnishingType = "furnished"
)

// ComplianceType is the regulatory licensing body for the listing.
type ComplianceType string

const (
	ComplianceRERA  ComplianceType = "rera"
	ComplianceDTCM  ComplianceType = "dtcm"
	ComplianceADREC ComplianceType = "adrec"
)

// ProjectStatus is the development status advertised to the portals.
type ProjectStatus string

const (
	ProjectCompleted        ProjectStatus = "completed"
	ProjectOffPlan          ProjectStatus = "off_plan"
	ProjectCompletedPrimary ProjectStatus = "completed_primary"
	ProjectOffPlanPrimary   ProjectStatus = "off_plan_primary"
)

// Property is the central CRM entity: a listing plus its portal publishing
// state and staged approval-workflow edits.
type Property struct {
	ID string `json:"id"`

	// Basic listing attributes
	Title         string    `json:"title"`
	TitleAr       *string   `json:"titleAr,omitempty"`
	Category      Category  `json:"category"`
	Status        Status    `json:"status"`
	Price         float64   `json:"price"`
	PriceType     PriceType `json:"priceType,omitempty"`
	Location      string    `json:"location"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Area          float64   `json:"area"`
	Agent         string    `json:"agent"`
	Image         *string   `json:"image,omitempty"`
	Description   *string   `json:"description,omitempty"`
	DescriptionAr *string   `json:"descriptionAr,omitempty"`

	// Portal enhancement attributes, optional until enhancement runs
	FurnishingType             FurnishingType `json:"furnishingType,omitempty"`
	Size                       *float64       `json:"size,omitempty"`
	PropertyAge                *int           `json:"propertyAge,omitempty"`
	AvailableFrom              *time.Time     `json:"availableFrom,omitempty"`
	ComplianceType             ComplianceType `json:"complianceType,omitempty"`
	ListingAdvertisementNumber *string        `json:"listingAdvertisementNumber,omitempty"`
	ProjectStatus              ProjectStatus  `json:"projectStatus,omitempty"`
	Developer                  *string        `json:"developer,omitempty"`
	UnitNumber                 *string        `json:"unitNumber,omitempty"`
	FloorNumber                *string        `json:"floorNumber,omitempty"`
	ParkingSlots               int            `json:"parkingSlots"`
	Downpayment                *float64       `json:"downpayment,omitempty"`
	NumberOfCheques            *int           `json:"numberOfCheques,omitempty"`
	Amenities                  []string       `json:"amenities,omitempty"`

	// Portal state. PortalConfigs is keyed by portal name so there is at most
	// one entry per portal and lookups are O(1).
	PublishedPortals []PortalName                 `json:"publishedPortals"`
	PortalConfigs    map[PortalName]*PortalConfig `json:"portalConfigs,omitempty"`

	AssignedAgentID *string `json:"assignedAgentId,omitempty"`

	IsPortalEnhanced             bool       `json:"isPortalEnhanced"`
	PortalEnhancementCompletedAt *time.Time `json:"portalEnhancementCompletedAt,omitempty"`
	PortalEnhancementCompletedBy *string    `json:"portalEnhancementCompletedBy,omitempty"`

	// Approval workflow
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	PendingChanges  *PropertyPatch `json:"pendingChanges,omitempty"`
	EditedBy        *string        `json:"editedBy,omitempty"`
	EditedAt        *time.Time     `json:"editedAt,omitempty"`
	RejectionReason *string        `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PortalConfig returns the config for the named portal, or nil if the property
// has none.
func (p *Property) PortalConfig(name PortalName) *PortalConfig {
	if p.PortalConfigs == nil {
		return nil
	}
	return p.PortalConfigs[name]
}

// UpsertPortalConfig merges cfg into the existing entry for its portal, or
// inserts it when absent. Zero-valued fields of cfg do not clobber existing
// values; only set fields are applied.
func (p *Property) UpsertPortalConfig(name PortalName, cfg PortalConfigUpdate) *PortalConfig {
	if p.PortalConfigs == nil {
		p.PortalConfigs = make(map[PortalName]*PortalConfig)
	}
	existing, ok := p.PortalConfigs[name]
	if !ok {
		existing = &PortalConfig{Portal: name, PortalStatus: PortalStatusDraft}
		p.PortalConfigs[name] = existing
	}
	cfg.applyTo(existing)
	return existing
}

// MarkPortalEnhanced flips the enhancement gate and records who completed it.
func (p *Property) MarkPortalEnhanced(actorID string, at time.Time) {
	p.IsPortalEnhanced = true
	p.PortalEnhancementCompletedAt = &at
	p.PortalEnhancementCompletedBy = &actorID
}

// HasPendingChanges reports whether a non-empty draft is staged.
func (p *Property) HasPendingChanges() bool {
	return p.PendingChanges != nil && !p.PendingChanges.IsEmpty()
}

// Clone returns a deep copy. Workflow transitions mutate a copy so a failed
// transition never leaves a half-modified aggregate behind.
func (p *Property) Clone() *Property {
	cp := *p
	if p.PortalConfigs != nil {
		cp.PortalConfigs = make(map[PortalName]*PortalConfig, len(p.PortalConfigs))
		for name, cfg := range p.PortalConfigs {
			c := *cfg
			c.ValidationErrors = append([]string(nil), cfg.ValidationErrors...)
			cp.PortalConfigs[name] = &c
		}
	}
	cp.PublishedPortals = append([]PortalName(nil), p.PublishedPortals...)
	cp.Amenities = append([]string(nil), p.Amenities...)
	if p.PendingChanges != nil {
		pc := *p.PendingChanges
		cp.PendingChanges = &pc
	}
	return &cp
}

// ValidCategories contains all valid listing categories.
var ValidCategories = []Category{CategoryRental, CategorySale, CategoryLuxury}

// ValidStatuses contains all valid listing statuses.
var ValidStatuses = []Status{StatusAvailable, StatusReserved, StatusSold, StatusRented}

// ValidPriceTypes contains all valid price types.
var ValidPriceTypes = []PriceType{PriceSale, PriceYearly, PriceMonthly, PriceWeekly, PriceDaily}

// IsValidCategory checks if a category is valid.
func IsValidCategory(c Category) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidStatus checks if a listing status is valid.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
