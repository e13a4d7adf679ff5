package repository

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
)

// RoutePlanRepository определяет методы для работы с планами маршрутов
type RoutePlanRepository interface {
	List(ctx context.Context) ([]domain.RoutePlan, error)

	// GetByID returns the plan with routes, stops and trackpoints
	GetByID(ctx context.Context, id int64) (*domain.RoutePlan, error)

	// GetActive returns the active plan with its routes, or nil when no plan is active
	GetActive(ctx context.Context) (*domain.RoutePlan, error)

	// Activate makes the plan the only active one
	Activate(ctx context.Context, id int64) error

	// CreateRoute finds or creates the plan by name and stores the route with its points
	CreateRoute(ctx context.Context, upload domain.RouteUpload) (*domain.RouteUploadResult, error)

	// Delete removes the route and/or the plan atomically and returns how many were removed
	Delete(ctx context.Context, routeID, planID *int64) (int, error)

	Summaries(ctx context.Context) ([]domain.RoutePlanSummary, error)
}
