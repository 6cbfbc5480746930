package service

import (
	"context"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/repository"
)

// PropertyServiceInterface defines the property CRUD operations.
// Used for dependency injection and mocking in tests.
type PropertyServiceInterface interface {
	// Create validates and stores a new property with listing defaults.
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	// Get retrieves a property by ID.
	Get(ctx context.Context, id string) (*domain.Property, error)
	// List returns a filtered page of properties plus the total match count.
	List(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, int, error)
	// Update applies a direct patch outside the approval workflow.
	Update(ctx context.Context, id string, patch *domain.PropertyPatch) (*domain.Property, error)
	// Delete removes a property.
	Delete(ctx context.Context, id string) error
	// Search matches properties by title or location.
	Search(ctx context.Context, query string, limit int) ([]domain.Property, error)
	// PendingApprovals lists properties awaiting review.
	PendingApprovals(ctx context.Context) ([]domain.Property, error)
}

// WorkflowServiceInterface defines the approval workflow transitions.
// Used for dependency injection and mocking in tests.
type WorkflowServiceInterface interface {
	// SaveDraft stages a set of edits on a property without changing its
	// approval status.
	SaveDraft(ctx context.Context, id string, patch *domain.PropertyPatch, actorID string) (*domain.Property, error)
	// SubmitForApproval moves a property with staged edits into review.
	SubmitForApproval(ctx context.Context, id string) (*domain.Property, error)
	// Approve merges the staged edits into the live record.
	Approve(ctx context.Context, id string) (*domain.Property, error)
	// Reject discards the staged edits and records the reason.
	Reject(ctx context.Context, id, reason string) (*domain.Property, error)
}

// PortalServiceInterface defines portal enhancement, readiness checking, and
// publishing. Used for dependency injection and mocking in tests.
type PortalServiceInterface interface {
	// Enhance applies portal-specific enrichment to a property.
	Enhance(ctx context.Context, id string, input EnhancementInput, actorID string) (*domain.Property, error)
	// BulkEnhance applies a shared enrichment payload to many properties.
	BulkEnhance(ctx context.Context, ids []string, input EnhancementInput, actorID string) (*BulkEnhanceResult, error)
	// Readiness reports per-portal publishability without side effects.
	Readiness(ctx context.Context, id string, portals []domain.PortalName) ([]domain.PortalReadinessCheck, error)
	// Publish marks the property live on the requested portals, all or nothing.
	Publish(ctx context.Context, id string, portals []domain.PortalName) (*domain.Property, error)
}

// AgentServiceInterface defines agent operations.
// Used for dependency injection and mocking in tests.
type AgentServiceInterface interface {
	Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	Get(ctx context.Context, id string) (*domain.Agent, error)
	List(ctx context.Context) ([]domain.Agent, error)
	Update(ctx context.Context, id string, upd AgentUpdate) (*domain.Agent, error)
	// Performance summarizes the agent's track record.
	Performance(ctx context.Context, id string) (*domain.AgentPerformance, error)
	// Properties lists the properties assigned to the agent.
	Properties(ctx context.Context, id string) ([]domain.Property, error)
}

// DashboardServiceInterface provides the dashboard headline numbers.
type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// LocationServiceInterface searches portal location taxonomies.
type LocationServiceInterface interface {
	Search(ctx context.Context, portal domain.PortalName, query string) ([]domain.PortalLocation, error)
}
