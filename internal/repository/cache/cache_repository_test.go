package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/repository/cache"
)

func getTestCache(t *testing.T) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	keys := []string{cache.KeyActivePlan, cache.KeyActiveStops, cache.KeyActivePlanGen, cache.KeyActiveStopsGen}
	client.Del(ctx, keys...)

	return client, func() {
		client.Del(context.Background(), keys...)
		client.Close()
	}
}

func TestCacheRepository_ActivePlan(t *testing.T) {
	client, cleanup := getTestCache(t)
	defer cleanup()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, nil))
	ctx := context.Background()

	plan, ok, err := repo.GetActivePlan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, plan)

	in := &domain.RoutePlan{ID: 7, Name: "Plan A", IsActive: true, Routes: []domain.Route{
		{ID: 1, Name: "R1", Shift: domain.ShiftFixed8, Color: domain.DefaultRouteColor},
	}}
	gen, err := repo.ActivePlanGeneration(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SetActivePlan(ctx, in, time.Minute, gen))

	plan, ok, err = repo.GetActivePlan(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7), plan.ID)
	require.Len(t, plan.Routes, 1)
	assert.Equal(t, "R1", plan.Routes[0].Name)

	require.NoError(t, repo.InvalidateActivePlan(ctx))
	_, ok, err = repo.GetActivePlan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheRepository_ActiveStops(t *testing.T) {
	client, cleanup := getTestCache(t)
	defer cleanup()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, nil))
	ctx := context.Background()

	gen, err := repo.ActiveStopsGeneration(ctx)
	require.NoError(t, err)

	// an empty list is a hit, not a miss
	require.NoError(t, repo.SetActiveStops(ctx, nil, time.Minute, gen))
	stops, ok, err := repo.GetActiveStops(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, stops)

	require.NoError(t, repo.SetActiveStops(ctx, []domain.BusStop{{StopID: "S1", Latitude: 1, Longitude: 2}}, time.Minute, gen))
	stops, ok, err = repo.GetActiveStops(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, stops, 1)
	assert.Equal(t, "S1", stops[0].StopID)

	require.NoError(t, repo.InvalidateActiveStops(ctx))
	_, ok, err = repo.GetActiveStops(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheRepository_CorruptedEntryIsMiss(t *testing.T) {
	client, cleanup := getTestCache(t)
	defer cleanup()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, nil))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, cache.KeyActivePlan, []byte("{not json"), time.Minute))
	plan, ok, err := repo.GetActivePlan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, plan)
}

func TestCacheRepository_StaleFillAfterInvalidateIsDropped(t *testing.T) {
	client, cleanup := getTestCache(t)
	defer cleanup()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, nil))
	ctx := context.Background()

	// читатель взял поколение и старый план, затем активация инвалидировала кеш
	gen, err := repo.ActivePlanGeneration(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.InvalidateActivePlan(ctx))

	stale := &domain.RoutePlan{ID: 1, Name: "Old", IsActive: true}
	require.NoError(t, repo.SetActivePlan(ctx, stale, time.Minute, gen))

	_, ok, err := repo.GetActivePlan(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "stale plan must not reach the cache")

	fresh, err := repo.ActivePlanGeneration(ctx)
	require.NoError(t, err)
	assert.Equal(t, gen+1, fresh)
	require.NoError(t, repo.SetActivePlan(ctx, &domain.RoutePlan{ID: 2, Name: "New", IsActive: true}, time.Minute, fresh))

	plan, ok, err := repo.GetActivePlan(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), plan.ID)
}
