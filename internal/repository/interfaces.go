package repository

import (
	"context"

	"github.com/captain-burah/estateflow-pro/internal/domain"
)

// PropertyFilter narrows property listings.
type PropertyFilter struct {
	Category string
	City     string
	Status   string
	Page     int
	PageSize int
}

// PropertyRepository defines data access for the property aggregate.
//
// Get methods return (nil, nil) when the record does not exist; UpdateAtomic
// and Delete return a domain.NotFoundError instead, since their callers always
// require the record.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, int, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Property, error)
	ListPendingApprovals(ctx context.Context) ([]domain.Property, error)
	ListByAgent(ctx context.Context, agentName string) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	// UpdateAtomic runs mutate against the current record inside a single
	// transaction holding a row lock, then persists the result. Either the
	// whole transition commits or nothing is written.
	UpdateAtomic(ctx context.Context, id string, mutate func(*domain.Property) error) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// AgentRepository defines data access for agents.
type AgentRepository interface {
	Create(ctx context.Context, a *domain.Agent) error
	GetByID(ctx context.Context, id string) (*domain.Agent, error)
	List(ctx context.Context) ([]domain.Agent, error)
	Update(ctx context.Context, a *domain.Agent) error
	Count(ctx context.Context) (int, error)
}
