package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/repository"
	"github.com/captain-burah/estateflow-pro/internal/validator"
)

// PropertyService implements property CRUD outside the approval workflow.
type PropertyService struct {
	propertyRepo repository.PropertyRepository
	validator    *validator.Validator
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(propertyRepo repository.PropertyRepository, v *validator.Validator) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		validator:    v,
	}
}

// Create validates and stores a new property. New listings start approved,
// un-enhanced, with the standard regulatory defaults.
func (s *PropertyService) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.FurnishingType == "" {
		p.FurnishingType = domain.FurnishingUnfurnished
	}
	if p.ComplianceType == "" {
		p.ComplianceType = domain.ComplianceRERA
	}
	if p.ProjectStatus == "" {
		p.ProjectStatus = domain.ProjectCompleted
	}
	p.ApprovalStatus = domain.ApprovalApproved
	p.IsPortalEnhanced = false
	p.PendingChanges = nil

	if err := s.validator.ValidateProperty(p); err != nil {
		return nil, validator.ToValidationError(err)
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property created",
		slog.String("property_id", p.ID),
		slog.String("category", string(p.Category)),
	)
	return p, nil
}

// Get retrieves a property by ID.
func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{Resource: "property", ID: id}
	}
	return p, nil
}

// List returns a filtered page of properties plus the total match count.
func (s *PropertyService) List(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, int, error) {
	if filter.Category != "" && !domain.IsValidCategory(domain.Category(filter.Category)) {
		return nil, 0, &domain.ValidationError{Field: "type", Message: "invalid category"}
	}
	if filter.Status != "" && !domain.IsValidStatus(domain.Status(filter.Status)) {
		return nil, 0, &domain.ValidationError{Field: "status", Message: "invalid status"}
	}
	return s.propertyRepo.List(ctx, filter)
}

// Update applies a direct patch to the live record, bypassing the approval
// workflow. Used by the administrative edit path.
func (s *PropertyService) Update(ctx context.Context, id string, patch *domain.PropertyPatch) (*domain.Property, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, &domain.ValidationError{Message: "no changes provided"}
	}
	if err := s.validator.ValidatePatch(patch); err != nil {
		return nil, validator.ToValidationError(err)
	}

	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		patch.ApplyTo(prop)
		if err := s.validator.ValidateProperty(prop); err != nil {
			return validator.ToValidationError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property updated", slog.String("property_id", id))
	return p, nil
}

// Delete removes a property.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "property deleted", slog.String("property_id", id))
	return nil
}

// Search matches properties by title or location.
func (s *PropertyService) Search(ctx context.Context, query string, limit int) ([]domain.Property, error) {
	if query == "" {
		return nil, &domain.ValidationError{Field: "q", Message: "search query required"}
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.propertyRepo.Search(ctx, query, limit)
}

// PendingApprovals lists properties awaiting review.
func (s *PropertyService) PendingApprovals(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.ListPendingApprovals(ctx)
}
