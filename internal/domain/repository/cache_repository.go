package repository

import (
	"context"
	"time"

	"github.com/shuttle-hr/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// GetActivePlan returns the cached active plan. A miss returns (nil, false, nil).
	GetActivePlan(ctx context.Context) (*domain.RoutePlan, bool, error)
	// ActivePlanGeneration is read before loading the plan from the database
	ActivePlanGeneration(ctx context.Context) (int64, error)
	// SetActivePlan is a no-op when the plan was invalidated after gen was read
	SetActivePlan(ctx context.Context, plan *domain.RoutePlan, ttl time.Duration, gen int64) error

	// GetActiveStops returns the cached active stops. A miss returns (nil, false, nil).
	GetActiveStops(ctx context.Context) ([]domain.BusStop, bool, error)
	ActiveStopsGeneration(ctx context.Context) (int64, error)
	SetActiveStops(ctx context.Context, stops []domain.BusStop, ttl time.Duration, gen int64) error

	// Invalidate* drop the value and bump its generation
	InvalidateActivePlan(ctx context.Context) error
	InvalidateActiveStops(ctx context.Context) error
}
