package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	KeyActivePlan  = "route_plan:active"
	KeyActiveStops = "bus_stops:active"

	// счетчики инвалидаций: запись в кеш проходит только при неизменном поколении
	KeyActivePlanGen  = "route_plan:active:gen"
	KeyActiveStopsGen = "bus_stops:active:gen"
)

var errStaleGeneration = stderrors.New("stale cache generation")

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.Strings("keys", keys))
	return nil
}

func (r *cacheRepository) GetActivePlan(ctx context.Context) (*domain.RoutePlan, bool, error) {
	var plan domain.RoutePlan
	ok, err := r.getJSON(ctx, KeyActivePlan, &plan)
	if err != nil || !ok {
		return nil, false, err
	}
	return &plan, true, nil
}

func (r *cacheRepository) ActivePlanGeneration(ctx context.Context) (int64, error) {
	return r.generation(ctx, KeyActivePlanGen)
}

func (r *cacheRepository) SetActivePlan(ctx context.Context, plan *domain.RoutePlan, ttl time.Duration, gen int64) error {
	return r.setIfGeneration(ctx, KeyActivePlan, KeyActivePlanGen, plan, ttl, gen)
}

func (r *cacheRepository) GetActiveStops(ctx context.Context) ([]domain.BusStop, bool, error) {
	var stops []domain.BusStop
	ok, err := r.getJSON(ctx, KeyActiveStops, &stops)
	if err != nil || !ok {
		return nil, false, err
	}
	return stops, true, nil
}

func (r *cacheRepository) ActiveStopsGeneration(ctx context.Context) (int64, error) {
	return r.generation(ctx, KeyActiveStopsGen)
}

func (r *cacheRepository) SetActiveStops(ctx context.Context, stops []domain.BusStop, ttl time.Duration, gen int64) error {
	if stops == nil {
		stops = []domain.BusStop{}
	}
	return r.setIfGeneration(ctx, KeyActiveStops, KeyActiveStopsGen, stops, ttl, gen)
}

func (r *cacheRepository) InvalidateActivePlan(ctx context.Context) error {
	return r.invalidate(ctx, KeyActivePlan, KeyActivePlanGen)
}

func (r *cacheRepository) InvalidateActiveStops(ctx context.Context) error {
	return r.invalidate(ctx, KeyActiveStops, KeyActiveStopsGen)
}

// invalidate drops the cached value and bumps its generation atomically.
func (r *cacheRepository) invalidate(ctx context.Context, key, genKey string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.Incr(ctx, genKey)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to invalidate cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache invalidate error: %w", err)
	}

	r.logger.Debug("Cache invalidated", zap.String("key", key))
	return nil
}

func (r *cacheRepository) generation(ctx context.Context, genKey string) (int64, error) {
	gen, err := r.client.Get(ctx, genKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation error: %w", err)
	}
	return gen, nil
}

// setIfGeneration writes the value only while genKey still holds gen. A value
// read before an invalidation is dropped instead of overwriting fresher state.
func (r *cacheRepository) setIfGeneration(ctx context.Context, key, genKey string, value interface{}, ttl time.Duration, gen int64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
		return nil
	case stderrors.Is(err, errStaleGeneration), stderrors.Is(err, redis.TxFailedErr):
		r.logger.Debug("Cache write skipped, generation moved", zap.String("key", key))
		return nil
	default:
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// corrupted entry, drop it and treat as miss
		r.logger.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		_ = r.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}
