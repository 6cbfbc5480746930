package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/captain-burah/estateflow-pro/internal/domain"
)

var (
	validCategories   = []interface{}{domain.CategoryRental, domain.CategorySale, domain.CategoryLuxury}
	validStatuses     = []interface{}{domain.StatusAvailable, domain.StatusReserved, domain.StatusSold, domain.StatusRented}
	validPriceTypes   = []interface{}{domain.PriceSale, domain.PriceYearly, domain.PriceMonthly, domain.PriceWeekly, domain.PriceDaily}
	validFurnishing   = []interface{}{domain.FurnishingUnfurnished, domain.FurnishingSemiFurnished, domain.FurnishingFurnished}
	validCompliance   = []interface{}{domain.ComplianceRERA, domain.ComplianceDTCM, domain.ComplianceADREC}
	validProjectState = []interface{}{domain.ProjectCompleted, domain.ProjectOffPlan, domain.ProjectCompletedPrimary, domain.ProjectOffPlanPrimary}
)

// Minimum lengths the portals require for the English title and description.
const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

// Validator provides validation for domain entities and portal readiness.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateProperty validates a full property record. Used on creation and to
// re-validate the merged result of an approval.
func (v *Validator) ValidateProperty(p *domain.Property) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.Length(minTitleLen, 0).Error("title_too_short"),
		),
		validation.Field(&p.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&p.Price,
			validation.Required.Error("price_required"),
			validation.Min(0.0).Exclusive().Error("price_must_be_positive"),
		),
		validation.Field(&p.PriceType,
			validation.In(validPriceTypes...).Error("invalid_price_type"),
		),
		validation.Field(&p.Location,
			validation.Required.Error("location_required"),
		),
		validation.Field(&p.Bedrooms,
			validation.Min(0).Error("bedrooms_must_not_be_negative"),
		),
		validation.Field(&p.Bathrooms,
			validation.Min(0).Error("bathrooms_must_not_be_negative"),
		),
		validation.Field(&p.Area,
			validation.Required.Error("area_required"),
			validation.Min(0.0).Exclusive().Error("area_must_be_positive"),
		),
		validation.Field(&p.Agent,
			validation.Required.Error("agent_required"),
		),
		validation.Field(&p.FurnishingType,
			validation.In(validFurnishing...).Error("invalid_furnishing_type"),
		),
		validation.Field(&p.ComplianceType,
			validation.In(validCompliance...).Error("invalid_compliance_type"),
		),
		validation.Field(&p.ProjectStatus,
			validation.In(validProjectState...).Error("invalid_project_status"),
		),
	)
}

// ValidatePatch checks the enum-valued fields of a staged edit. Absent fields
// pass; set fields must carry valid values.
func (v *Validator) ValidatePatch(p *domain.PropertyPatch) error {
	if p == nil {
		return nil
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.When(p.Title != nil, validation.Length(minTitleLen, 0).Error("title_too_short")),
		),
		validation.Field(&p.Category,
			validation.When(p.Category != nil, validation.In(validCategories...).Error("invalid_category")),
		),
		validation.Field(&p.Status,
			validation.When(p.Status != nil, validation.In(validStatuses...).Error("invalid_status")),
		),
		validation.Field(&p.Price,
			validation.When(p.Price != nil, validation.Min(0.0).Exclusive().Error("price_must_be_positive")),
		),
		validation.Field(&p.PriceType,
			validation.When(p.PriceType != nil, validation.In(validPriceTypes...).Error("invalid_price_type")),
		),
		validation.Field(&p.FurnishingType,
			validation.When(p.FurnishingType != nil, validation.In(validFurnishing...).Error("invalid_furnishing_type")),
		),
		validation.Field(&p.ComplianceType,
			validation.When(p.ComplianceType != nil, validation.In(validCompliance...).Error("invalid_compliance_type")),
		),
		validation.Field(&p.ProjectStatus,
			validation.When(p.ProjectStatus != nil, validation.In(validProjectState...).Error("invalid_project_status")),
		),
	)
}

// ToValidationError converts an ozzo validation error into a typed domain
// ValidationError so handlers can map it to a 400 with field detail.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			return &domain.ValidationError{Field: field, Message: fieldErr.Error()}
		}
	}
	return &domain.ValidationError{Message: err.Error()}
}

// ValidateForPortal decides whether the property satisfies the named portal's
// publishing requirements. It is pure: no side effects, never fails, and an
// empty result means the property may be published to that portal.
//
// Field names follow the portal requirement labels (titleEn, descriptionEn)
// rather than the storage column names.
func (v *Validator) ValidateForPortal(p *domain.Property, portal domain.PortalName) []domain.PortalValidationError {
	var errs []domain.PortalValidationError

	if len(p.Title) < minTitleLen {
		errs = append(errs, domain.PortalValidationError{
			Field:   "titleEn",
			Message: "title must be at least 3 characters",
		})
	}
	if p.Description == nil || len(*p.Description) < minDescriptionLen {
		errs = append(errs, domain.PortalValidationError{
			Field:   "descriptionEn",
			Message: "description must be at least 10 characters",
		})
	}
	if p.Size == nil || *p.Size <= 0 {
		errs = append(errs, domain.PortalValidationError{
			Field:   "size",
			Message: "size must be greater than 0",
		})
	}
	if p.Price <= 0 {
		errs = append(errs, domain.PortalValidationError{
			Field:   "price",
			Message: "price must be greater than 0",
		})
	}
	if p.PriceType == "" {
		errs = append(errs, domain.PortalValidationError{
			Field:   "priceType",
			Message: "price type is required",
		})
	}

	cfg := p.PortalConfig(portal)
	if cfg == nil || cfg.LocationID == "" {
		errs = append(errs, domain.PortalValidationError{
			Field:   "locationId",
			Message: "portal location is required for publishing",
			Portal:  portal,
		})
	}

	return errs
}

// Readiness wraps ValidateForPortal into a publishability verdict with the
// distinct missing field names projected out.
func (v *Validator) Readiness(p *domain.Property, portal domain.PortalName) domain.PortalReadinessCheck {
	errs := v.ValidateForPortal(p, portal)

	seen := make(map[string]struct{}, len(errs))
	missing := make([]string, 0, len(errs))
	for _, e := range errs {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		missing = append(missing, e.Field)
	}

	return domain.PortalReadinessCheck{
		Portal:           portal,
		CanPublish:       len(errs) == 0,
		MissingFields:    missing,
		ValidationErrors: errs,
	}
}
