package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/repository"
)

// AgentUpdate is a partial update to an agent. Nil fields are left untouched.
type AgentUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Avatar       *string  `json:"avatar,omitempty"`
	SalesCount   *int     `json:"salesCount,omitempty"`
	TotalRevenue *float64 `json:"totalRevenue,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

// IsEmpty reports whether the update carries nothing to apply.
func (u AgentUpdate) IsEmpty() bool {
	return u == AgentUpdate{}
}

// AgentService implements the agent directory.
type AgentService struct {
	agentRepo    repository.AgentRepository
	propertyRepo repository.PropertyRepository
}

// NewAgentService creates a new AgentService.
func NewAgentService(agentRepo repository.AgentRepository, propertyRepo repository.PropertyRepository) *AgentService {
	return &AgentService{
		agentRepo:    agentRepo,
		propertyRepo: propertyRepo,
	}
}

// Create validates and stores a new agent.
func (s *AgentService) Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	if a.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "name required"}
	}
	if a.Email == "" {
		return nil, &domain.ValidationError{Field: "email", Message: "email required"}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.agentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "agent created", slog.String("agent_id", a.ID))
	return a, nil
}

// Get retrieves an agent by ID.
func (s *AgentService) Get(ctx context.Context, id string) (*domain.Agent, error) {
	a, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, &domain.NotFoundError{Resource: "agent", ID: id}
	}
	return a, nil
}

// List returns all agents, highest revenue first.
func (s *AgentService) List(ctx context.Context) ([]domain.Agent, error) {
	return s.agentRepo.List(ctx)
}

// Update merges the provided fields into the agent record.
func (s *AgentService) Update(ctx context.Context, id string, upd AgentUpdate) (*domain.Agent, error) {
	if upd.IsEmpty() {
		return nil, &domain.ValidationError{Message: "no changes provided"}
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.Email != nil {
		a.Email = *upd.Email
	}
	if upd.Phone != nil {
		a.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		a.Avatar = upd.Avatar
	}
	if upd.SalesCount != nil {
		a.SalesCount = *upd.SalesCount
	}
	if upd.TotalRevenue != nil {
		a.TotalRevenue = *upd.TotalRevenue
	}
	if upd.Rating != nil {
		a.Rating = *upd.Rating
	}

	if err := s.agentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "agent updated", slog.String("agent_id", id))
	return a, nil
}

// Performance summarizes the agent's track record.
func (s *AgentService) Performance(ctx context.Context, id string) (*domain.AgentPerformance, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AgentPerformance{
		Agent:         *a,
		TotalSales:    a.SalesCount,
		TotalRevenue:  a.TotalRevenue,
		AverageRating: a.Rating,
	}, nil
}

// Properties lists the properties assigned to the agent.
func (s *AgentService) Properties(ctx context.Context, id string) ([]domain.Property, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.propertyRepo.ListByAgent(ctx, a.Name)
}
