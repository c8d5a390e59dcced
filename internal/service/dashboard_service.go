package service

import (
	"context"
	"fmt"

	"github.com/a2sh3r/banshi-admin/internal/adminapi"
	"github.com/a2sh3r/banshi-admin/internal/models"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (models.Dashboard, error)
}

type dashboardService struct {
	client adminapi.ClientInterface
}

func NewDashboardService(client adminapi.ClientInterface) DashboardService {
	return &dashboardService{client: client}
}

// GetDashboard returns the aggregate counters. Counters the server leaves out are zero.
func (s *dashboardService) GetDashboard(ctx context.Context) (models.Dashboard, error) {
	d, err := s.client.GetDashboard(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to fetch dashboard: %w", err)
	}
	if d == nil {
		return models.Dashboard{}, nil
	}
	return *d, nil
}
