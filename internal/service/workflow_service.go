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

// WorkflowService drives the draft / submit / approve / reject cycle. Every
// transition runs as a single atomic read-modify-write, so concurrent calls
// against the same property serialize on the row lock and each one sees the
// previous transition's result.
type WorkflowService struct {
	propertyRepo repository.PropertyRepository
	validator    *validator.Validator
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(propertyRepo repository.PropertyRepository, v *validator.Validator) *WorkflowService {
	return &WorkflowService{
		propertyRepo: propertyRepo,
		validator:    v,
	}
}

// SaveDraft stages patch on the property. The staged edits replace any
// previously staged edits; the approval status is left untouched so a draft
// can be reworked while a previous rejection is still visible.
func (s *WorkflowService) SaveDraft(ctx context.Context, id string, patch *domain.PropertyPatch, actorID string) (*domain.Property, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, &domain.ValidationError{Message: "no changes provided"}
	}
	if err := s.validator.ValidatePatch(patch); err != nil {
		return nil, validator.ToValidationError(err)
	}

	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		now := time.Now()
		prop.PendingChanges = patch
		prop.EditedBy = &actorID
		prop.EditedAt = &now
		return nil
	})
	metrics.ObserveTransition("save_draft", err)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "draft saved",
		slog.String("property_id", id),
		slog.String("edited_by", actorID),
	)
	return p, nil
}

// SubmitForApproval moves the property into review. Requires staged edits.
func (s *WorkflowService) SubmitForApproval(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		if !prop.HasPendingChanges() {
			return &domain.InvalidStateError{Op: "submit for approval", State: "no pending changes"}
		}
		prop.ApprovalStatus = domain.ApprovalPending
		return nil
	})
	metrics.ObserveTransition("submit", err)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property submitted for approval", slog.String("property_id", id))
	return p, nil
}

// Approve merges the staged edits into the live record and re-validates the
// merged result; an invalid merge aborts the transition and keeps the staged
// edits in place. Identity and creation timestamp are never overwritten.
func (s *WorkflowService) Approve(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		if prop.ApprovalStatus != domain.ApprovalPending {
			return &domain.InvalidStateError{Op: "approve", State: string(prop.ApprovalStatus)}
		}
		if !prop.HasPendingChanges() {
			return &domain.InvalidStateError{Op: "approve", State: "no pending changes"}
		}

		prop.PendingChanges.ApplyTo(prop)
		if err := s.validator.ValidateProperty(prop); err != nil {
			return validator.ToValidationError(err)
		}

		prop.ApprovalStatus = domain.ApprovalApproved
		prop.PendingChanges = nil
		prop.RejectionReason = nil
		return nil
	})
	metrics.ObserveTransition("approve", err)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property edits approved", slog.String("property_id", id))
	return p, nil
}

// Reject discards the staged edits and records why.
func (s *WorkflowService) Reject(ctx context.Context, id, reason string) (*domain.Property, error) {
	if reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Message: "rejection reason required"}
	}

	p, err := s.propertyRepo.UpdateAtomic(ctx, id, func(prop *domain.Property) error {
		prop.ApprovalStatus = domain.ApprovalRejected
		prop.RejectionReason = &reason
		prop.PendingChanges = nil
		return nil
	})
	metrics.ObserveTransition("reject", err)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "property edits rejected",
		slog.String("property_id", id),
		slog.String("reason", reason),
	)
	return p, nil
}
