package domain

import "time"

// PortalName identifies an external property-listing marketplace.
type PortalName string

const (
	PortalPropertyFinder PortalName = "property_finder"
	PortalBayut          PortalName = "bayut"
	PortalDubizzle       PortalName = "dubizzle"
)

// ValidPortals contains all supported portals.
var ValidPortals = []PortalName{PortalPropertyFinder, PortalBayut, PortalDubizzle}

// IsValidPortal checks if a portal name is supported.
func IsValidPortal(name PortalName) bool {
	for _, p := range ValidPortals {
		if p == name {
			return true
		}
	}
	return false
}

// PortalStatus is the published-state of a property on a single portal.
type PortalStatus string

const (
	PortalStatusDraft     PortalStatus = "draft"
	PortalStatusPublished PortalStatus = "published"
	PortalStatusPending   PortalStatus = "pending"
	PortalStatusError     PortalStatus = "error"
)

// PortalConfig is the per-portal published-state record attached to a property.
type PortalConfig struct {
	Portal           PortalName   `json:"portal"`
	IsActive         bool         `json:"isActive"`
	LocationID       string       `json:"locationId,omitempty"`
	LocationFullName string       `json:"locationFullName,omitempty"`
	PublishedAt      *time.Time   `json:"publishedAt,omitempty"`
	LastSyncedAt     *time.Time   `json:"lastSyncedAt,omitempty"`
	PortalStatus     PortalStatus `json:"portalStatus"`
	ValidationErrors []string     `json:"validationErrors,omitempty"`
}

// PortalConfigUpdate is a partial update to a PortalConfig. Nil fields are
// left untouched on merge.
type PortalConfigUpdate struct {
	IsActive         *bool
	LocationID       *string
	LocationFullName *string
	PublishedAt      *time.Time
	LastSyncedAt     *time.Time
	PortalStatus     *PortalStatus
	ValidationErrors *[]string
}

func (u PortalConfigUpdate) applyTo(cfg *PortalConfig) {
	if u.IsActive != nil {
		cfg.IsActive = *u.IsActive
	}
	if u.LocationID != nil {
		cfg.LocationID = *u.LocationID
	}
	if u.LocationFullName != nil {
		cfg.LocationFullName = *u.LocationFullName
	}
	if u.PublishedAt != nil {
		cfg.PublishedAt = u.PublishedAt
	}
	if u.LastSyncedAt != nil {
		cfg.LastSyncedAt = u.LastSyncedAt
	}
	if u.PortalStatus != nil {
		cfg.PortalStatus = *u.PortalStatus
	}
	if u.ValidationErrors != nil {
		cfg.ValidationErrors = *u.ValidationErrors
	}
}

// PortalValidationError is one reason a property cannot be published.
type PortalValidationError struct {
	Field   string     `json:"field"`
	Message string     `json:"message"`
	Portal  PortalName `json:"portal,omitempty"`
}

// PortalReadinessCheck is the result of validating a property against one
// portal's publishing requirements.
type PortalReadinessCheck struct {
	Portal           PortalName              `json:"portal"`
	CanPublish       bool                    `json:"canPublish"`
	MissingFields    []string                `json:"missingFields"`
	ValidationErrors []PortalValidationError `json:"validationErrors"`
}

// PortalLocation is a candidate from the portal location autocomplete.
type PortalLocation struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	NameAr *string    `json:"nameAr,omitempty"`
	Portal PortalName `json:"portal"`
}
