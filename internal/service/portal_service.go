package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/metrics"
	"github.com/captain-burah/estateflow-pro/internal/repository"
	"github.com/captain-burah/estateflow-pro/internal/validator"
)

// PortalLocationInput is a chosen location mapping for one portal.
type PortalLocationInput struct {
	LocationID       string `json:"locationId"`
	LocationFullName string `json:"locationFullName"`
}

// EnhancementInput carries the optional portal enrichment fields. Nil fields
// are left untouched on the property; they are never overwritten with
// defaults.
type EnhancementInput struct {
	FurnishingType *domain.FurnishingType                    `json:"furnishingType,omitempty"`
	ComplianceType *domain.ComplianceType                    `json:"complianceType,omitempty"`
	ProjectStatus  *domain.ProjectStatus                     `json:"projectStatus,omitempty"`
	Amenities      *[]string                                 `json:"amenities,omitempty"`
	Locations      map[domain.PortalName]PortalLocationInput `json:"locations,omitempty"`
}

// IsEmpty reports whether the input carries nothing to apply.
func (in EnhancementInput) IsEmpty() bool {
	return in.FurnishingType == nil &&
		in.ComplianceType == nil &&
		in.ProjectStatus == nil &&
		in.Amenities == nil &&
		len(in.Locations) == 0
}

// BulkEnhanceResult reports the per-property outcome of a bulk enhancement.
type BulkEnhanceResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// PortalService attaches portal metadata to properties, checks readiness, and
// flips publish state.
type PortalService struct {
	propertyRepo repository.PropertyRepository
	validator    *validator.Validator
}

// NewPortalService creates a new PortalService.
func NewPortalService(propertyRepo repository.PropertyRepository, v *validator.Validator) *PortalService {
	return &PortalService{
		propertyRepo: propertyRepo,
		validator:    v,
	}
}

func (s *PortalService) applyEnhancement(prop *domain.Property, input EnhancementInput, actorID string, at time.Time) error {
	if input.FurnishingType != nil {
		prop.FurnishingType = *input.FurnishingType
	}
	if input.ComplianceType != nil {
		prop.ComplianceType = *input.ComplianceType
	}
	if input.ProjectStatus != nil {
		prop.ProjectStatus = *input.ProjectStatus
	}
	if input.Amenities != nil {
		prop.Amenities = *input.Amenities
	}
	for portal, loc := range input.Locations {
		if !domain.IsValidPortal(portal) {
			return &domain.ValidationError{Field: "locations", Message: "unknown portal " + string(portal)}
		}
		prop.UpsertPortalConfig(portal, domain.PortalConfigUpdate{
			LocationID:       &loc.LocationID,
			LocationFullName: &loc.LocationFullName,
		})
	}
	prop.MarkPortalEnhanced(actorID, at)
	return nil
}

// Enhance merges the provided enrichment fields into the property and flips
// the enhancement flag. Applying the same input twice yields the same state.
func (s *PortalService) Enhance(ctx context.Context, id string, input EnhancementInput, actorID string) (*domain.Property, error) {
	if input.IsEmpty() {
		return nil, &domain.ValidationError{Message: "nothing to update"}
	}

	now := time.Now()
	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		return s.applyEnhancement(prop, input, actorID, now)
	})
	if err != nil {
		metrics.PortalEnhancementsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.PortalEnhancementsTotal.WithLabelValues("success").Inc()

	logger.InfoContext(ctx, "property enhanced for portals",
		slog.String("property_id", id),
		slog.String("actor_id", actorID),
	)
	return p, nil
}

// BulkEnhance applies a shared enrichment payload to each property in ids,
// atomically per record. Location mappings are per-property and therefore not
// accepted in bulk mode.
func (s *PortalService) BulkEnhance(ctx context.Context, ids []string, input EnhancementInput, actorID string) (*BulkEnhanceResult, error) {
	if len(ids) == 0 {
		return nil, &domain.ValidationError{Field: "propertyIds", Message: "no properties selected"}
	}
	if len(input.Locations) > 0 {
		return nil, &domain.ValidationError{Field: "locations", Message: "location mappings are not allowed in bulk mode"}
	}
	if input.IsEmpty() {
		return nil, &domain.ValidationError{Message: "nothing to update"}
	}

	result := &BulkEnhanceResult{}
	now := time.Now()
	for _, id := range ids {
		_, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
			return s.applyEnhancement(prop, input, actorID, now)
		})
		if err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[id] = err.Error()
			metrics.PortalEnhancementsTotal.WithLabelValues("failure").Inc()
			continue
		}
		result.Updated = append(result.Updated, id)
		metrics.PortalEnhancementsTotal.WithLabelValues("success").Inc()
	}

	logger.InfoContext(ctx, "bulk enhancement finished",
		slog.Int("updated", len(result.Updated)),
		slog.Int("failed", len(result.Failed)),
		slog.String("actor_id", actorID),
	)
	return result, nil
}

// Readiness reports, per portal, whether the property can be published. With
// an empty portal list it checks all known portals.
func (s *PortalService) Readiness(ctx context.Context, id string, portals []domain.PortalName) ([]domain.PortalReadinessCheck, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{Resource: "property", ID: id}
	}

	if len(portals) == 0 {
		portals = domain.ValidPortals
	}
	checks := make([]domain.PortalReadinessCheck, 0, len(portals))
	for _, portal := range portals {
		if !domain.IsValidPortal(portal) {
			return nil, &domain.ValidationError{Field: "portal", Message: "unknown portal " + string(portal)}
		}
		checks = append(checks, s.validator.Readiness(p, portal))
	}
	return checks, nil
}

// Publish flips the property live on exactly the requested portals. Any
// portal failing readiness fails the whole call; a publish never partially
// applies.
func (s *PortalService) Publish(ctx context.Context, id string, portals []domain.PortalName) (*domain.Property, error) {
	if len(portals) == 0 {
		return nil, &domain.ValidationError{Field: "portals", Message: "no portals selected"}
	}
	for _, portal := range portals {
		if !domain.IsValidPortal(portal) {
			return nil, &domain.ValidationError{Field: "portals", Message: "unknown portal " + string(portal)}
		}
	}

	now := time.Now()
	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		if !prop.IsPortalEnhanced {
			return &domain.InvalidStateError{Op: "publish", State: "not portal enhanced"}
		}

		failures := make(map[domain.PortalName][]string)
		for _, portal := range portals {
			check := s.validator.Readiness(prop, portal)
			if !check.CanPublish {
				failures[portal] = check.MissingFields
			}
		}
		if len(failures) > 0 {
			return &domain.PortalReadinessError{Failures: failures}
		}

		prop.PublishedPortals = append([]domain.PortalName(nil), portals...)
		requested := make(map[domain.PortalName]bool, len(portals))
		published := domain.PortalStatusPublished
		active := true
		for _, portal := range portals {
			requested[portal] = true
			prop.UpsertPortalConfig(portal, domain.PortalConfigUpdate{
				PortalStatus: &published,
				PublishedAt:  &now,
				IsActive:     &active,
			})
		}

		// Portals dropped from the published set keep their config history
		// but go back to an inactive draft state.
		draft := domain.PortalStatusDraft
		inactive := false
		for name, cfg := range prop.PortalConfigs {
			if !requested[name] && cfg.IsActive {
				prop.UpsertPortalConfig(name, domain.PortalConfigUpdate{
					PortalStatus: &draft,
					IsActive:     &inactive,
				})
			}
		}
		return nil
	})
	for _, portal := range portals {
		metrics.ObservePublish(string(portal), err)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property published to portals",
		slog.String("property_id", id),
		slog.Int("portal_count", len(portals)),
	)
	return p, nil
}
