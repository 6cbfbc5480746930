package service

import (
	"context"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/repository"
)

// DashboardService assembles the dashboard headline numbers.
type DashboardService struct {
	propertyRepo repository.PropertyRepository
	agentRepo    repository.AgentRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(propertyRepo repository.PropertyRepository, agentRepo repository.AgentRepository) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		agentRepo:    agentRepo,
	}
}

// Stats returns the property aggregates plus the active agent count.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.propertyRepo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	agents, err := s.agentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveAgents = agents

	return stats, nil
}
