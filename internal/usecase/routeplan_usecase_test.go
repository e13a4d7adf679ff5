package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
)

const sampleGPX = `<?xml version="1.0"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <rte>
    <rtept lat="19.40" lon="-99.10"><name>Norte</name></rtept>
    <rtept lat="19.45" lon="-99.15"></rtept>
  </rte>
  <trk><trkseg>
    <trkpt lat="19.40" lon="-99.10"></trkpt>
    <trkpt lat="19.42" lon="-99.12"></trkpt>
    <trkpt lat="19.45" lon="-99.15"></trkpt>
  </trkseg></trk>
</gpx>`

func newRoutePlanUseCase() (*usecase.RoutePlanUseCase, *MockRoutePlanRepository, *MockCacheRepository) {
	plans := &MockRoutePlanRepository{}
	cache := &MockCacheRepository{}
	logger := zap.NewNop()
	active := usecase.NewActiveData(&MockBusStopRepository{}, plans, cache, time.Minute, time.Minute, logger)
	return usecase.NewRoutePlanUseCase(plans, active, logger), plans, cache
}

func TestRoutePlanUseCase_Active(t *testing.T) {
	ctx := context.Background()

	t.Run("cached plan", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		cache.On("GetActivePlan", ctx).Return(&domain.RoutePlan{ID: 2, IsActive: true}, true, nil)

		plan, err := uc.Active(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(2), plan.ID)
		plans.AssertNotCalled(t, "GetActive", mock.Anything)
	})

	t.Run("none active", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		cache.On("GetActivePlan", ctx).Return(nil, false, nil)
		cache.On("ActivePlanGeneration", ctx).Return(int64(0), nil)
		plans.On("GetActive", ctx).Return(nil, nil)

		_, err := uc.Active(ctx)

		assert.ErrorIs(t, err, errors.ErrNoActivePlan)
		cache.AssertNotCalled(t, "SetActivePlan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("generation is read before the database", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plan := &domain.RoutePlan{ID: 3, IsActive: true}
		var order []string
		cache.On("GetActivePlan", ctx).Return(nil, false, nil)
		cache.On("ActivePlanGeneration", ctx).Return(int64(9), nil).
			Run(func(mock.Arguments) { order = append(order, "generation") })
		plans.On("GetActive", ctx).Return(plan, nil).
			Run(func(mock.Arguments) { order = append(order, "database") })
		cache.On("SetActivePlan", ctx, plan, time.Minute, int64(9)).Return(nil)

		got, err := uc.Active(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, []string{"generation", "database"}, order)
		cache.AssertExpectations(t)
	})
}

func TestRoutePlanUseCase_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("activates and invalidates cache", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("Activate", ctx, int64(2)).Return(nil)
		cache.On("InvalidateActivePlan", ctx).Return(nil)
		plans.On("GetByID", ctx, int64(2)).Return(&domain.RoutePlan{ID: 2, IsActive: true}, nil)

		plan, err := uc.Activate(ctx, 2)

		require.NoError(t, err)
		assert.True(t, plan.IsActive)
		plans.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("Activate", ctx, int64(9)).Return(errors.ErrNotFound)

		_, err := uc.Activate(ctx, 9)

		assert.ErrorIs(t, err, errors.ErrNotFound)
		cache.AssertNotCalled(t, "InvalidateActivePlan", mock.Anything)
	})
}

func TestRoutePlanUseCase_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults plan name, shift and color", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("CreateRoute", ctx, mock.MatchedBy(func(u domain.RouteUpload) bool {
			return u.PlanName == "Ruta 7 Plan" &&
				u.Activate &&
				u.Route.Shift == domain.ShiftFixed8 &&
				u.Route.Color == domain.DefaultRouteColor &&
				len(u.Route.Trackpoints) == 3 &&
				len(u.Route.Stops) == 2 &&
				u.Route.Stops[0].StopName == "Norte" &&
				u.Route.Stops[1].StopName == "Stop 2"
		})).Return(&domain.RouteUploadResult{RouteID: 1, PlanID: 2, PlanCreated: true, TrackPoints: 3, StopPoints: 2}, nil)
		cache.On("InvalidateActivePlan", ctx).Return(nil)

		res, err := uc.Upload(ctx, []byte(sampleGPX), dto.RouteUploadRequest{Name: "Ruta 7", IsActive: "on"})

		require.NoError(t, err)
		assert.Equal(t, int64(2), res.PlanID)
		assert.True(t, res.PlanCreated)
		plans.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("explicit plan and shift", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("CreateRoute", ctx, mock.MatchedBy(func(u domain.RouteUpload) bool {
			return u.PlanName == "Plan Norte" && !u.Activate && u.Route.Shift == domain.ShiftMixed12 && u.Route.Color == "#FF0000"
		})).Return(&domain.RouteUploadResult{RouteID: 3, PlanID: 1}, nil)
		cache.On("InvalidateActivePlan", ctx).Return(nil)

		_, err := uc.Upload(ctx, []byte(sampleGPX), dto.RouteUploadRequest{
			Name:      "Ruta 8",
			PlanName:  "Plan Norte",
			RouteType: "mixed_12hrs",
			Color:     "#FF0000",
		})

		require.NoError(t, err)
		plans.AssertExpectations(t)
	})

	t.Run("unknown route type", func(t *testing.T) {
		uc, plans, _ := newRoutePlanUseCase()

		_, err := uc.Upload(ctx, []byte(sampleGPX), dto.RouteUploadRequest{Name: "R", RouteType: "NIGHT"})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		plans.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything)
	})

	t.Run("broken gpx", func(t *testing.T) {
		uc, plans, _ := newRoutePlanUseCase()

		_, err := uc.Upload(ctx, []byte("<gpx><trk>"), dto.RouteUploadRequest{Name: "R"})

		assert.ErrorIs(t, err, errors.ErrInvalidUpload)
		plans.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything)
	})
}

func TestRoutePlanUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("needs an id", func(t *testing.T) {
		uc, _, _ := newRoutePlanUseCase()

		_, err := uc.Delete(ctx, dto.DeleteRouteRequest{})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("route and plan", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("Delete", ctx, int64Ptr(4), int64Ptr(2)).Return(2, nil)
		cache.On("InvalidateActivePlan", ctx).Return(nil)

		res, err := uc.Delete(ctx, dto.DeleteRouteRequest{RouteID: int64Ptr(4), PlanID: int64Ptr(2)})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Deleted)
		plans.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("route only", func(t *testing.T) {
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("Delete", ctx, int64Ptr(4), (*int64)(nil)).Return(1, nil)
		cache.On("InvalidateActivePlan", ctx).Return(nil)

		res, err := uc.Delete(ctx, dto.DeleteRouteRequest{RouteID: int64Ptr(4)})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Deleted)
		cache.AssertExpectations(t)
	})

	t.Run("missing plan keeps the route", func(t *testing.T) {
		// удаление атомарное: маршрут остается, кеш не трогаем
		uc, plans, cache := newRoutePlanUseCase()
		plans.On("Delete", ctx, int64Ptr(4), int64Ptr(99)).
			Return(0, errors.ErrNotFound.WithMessage("Route plan not found"))

		res, err := uc.Delete(ctx, dto.DeleteRouteRequest{RouteID: int64Ptr(4), PlanID: int64Ptr(99)})

		assert.Nil(t, res)
		assert.ErrorIs(t, err, errors.ErrNotFound)
		plans.AssertExpectations(t)
		cache.AssertNotCalled(t, "InvalidateActivePlan", mock.Anything)
	})
}
