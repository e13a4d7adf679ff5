package usecase

import (
	"context"
	"time"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"go.uber.org/zap"
)

// ActiveData reads the active stop set and the active plan through the redis
// cache. Cache failures are logged and fall through to the database. Cache
// fills are guarded by a generation counter that every invalidation bumps.
type ActiveData struct {
	stopRepo repository.BusStopRepository
	planRepo repository.RoutePlanRepository
	cache    repository.CacheRepository
	stopsTTL time.Duration
	planTTL  time.Duration
	logger   *zap.Logger
}

func NewActiveData(
	stopRepo repository.BusStopRepository,
	planRepo repository.RoutePlanRepository,
	cache repository.CacheRepository,
	stopsTTL, planTTL time.Duration,
	logger *zap.Logger,
) *ActiveData {
	return &ActiveData{
		stopRepo: stopRepo,
		planRepo: planRepo,
		cache:    cache,
		stopsTTL: stopsTTL,
		planTTL:  planTTL,
		logger:   logger,
	}
}

// Stops returns every active stop ordered by stop_id.
func (a *ActiveData) Stops(ctx context.Context) ([]domain.BusStop, error) {
	stops, hit, err := a.cache.GetActiveStops(ctx)
	if err != nil {
		a.logger.Warn("Active stops cache read failed", zap.Error(err))
	} else if hit {
		metrics.CacheHits.WithLabelValues("active_stops").Inc()
		return stops, nil
	}
	metrics.CacheMisses.WithLabelValues("active_stops").Inc()

	// поколение читается до базы, иначе устаревший снимок может пережить инвалидацию
	gen, genErr := a.cache.ActiveStopsGeneration(ctx)
	if genErr != nil {
		a.logger.Warn("Active stops cache generation read failed", zap.Error(genErr))
	}

	stops, err = a.stopRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if err := a.cache.SetActiveStops(ctx, stops, a.stopsTTL, gen); err != nil {
			a.logger.Warn("Failed to cache active stops", zap.Error(err))
		}
	}
	return stops, nil
}

// Plan returns the active plan with nested routes, or errors.ErrNoActivePlan.
func (a *ActiveData) Plan(ctx context.Context) (*domain.RoutePlan, error) {
	plan, hit, err := a.cache.GetActivePlan(ctx)
	if err != nil {
		a.logger.Warn("Active plan cache read failed", zap.Error(err))
	} else if hit {
		metrics.CacheHits.WithLabelValues("active_plan").Inc()
		return plan, nil
	}
	metrics.CacheMisses.WithLabelValues("active_plan").Inc()

	gen, genErr := a.cache.ActivePlanGeneration(ctx)
	if genErr != nil {
		a.logger.Warn("Active plan cache generation read failed", zap.Error(genErr))
	}

	plan, err = a.planRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.ErrNoActivePlan
	}

	if genErr == nil {
		if err := a.cache.SetActivePlan(ctx, plan, a.planTTL, gen); err != nil {
			a.logger.Warn("Failed to cache active plan", zap.Error(err))
		}
	}
	return plan, nil
}

// InvalidateStops drops the cached stop set.
func (a *ActiveData) InvalidateStops(ctx context.Context) {
	if err := a.cache.InvalidateActiveStops(ctx); err != nil {
		a.logger.Warn("Failed to invalidate active stops cache", zap.Error(err))
	}
}

// InvalidatePlan drops the cached active plan.
func (a *ActiveData) InvalidatePlan(ctx context.Context) {
	if err := a.cache.InvalidateActivePlan(ctx); err != nil {
		a.logger.Warn("Failed to invalidate active plan cache", zap.Error(err))
	}
}
