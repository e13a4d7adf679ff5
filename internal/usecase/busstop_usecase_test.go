package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
)

func recomputeEvent(reason string) interface{} {
	return mock.MatchedBy(func(e domain.AssignmentRecomputeEvent) bool {
		return e.Reason == reason
	})
}

func newBusStopUseCase() (*usecase.BusStopUseCase, *MockBusStopRepository, *MockCacheRepository, *MockStreamRepository) {
	stops := &MockBusStopRepository{}
	cache := &MockCacheRepository{}
	stream := &MockStreamRepository{}
	logger := zap.NewNop()

	active := usecase.NewActiveData(stops, &MockRoutePlanRepository{}, cache, time.Minute, time.Minute, logger)
	notifier := usecase.NewRecomputeNotifier(stream, logger)
	return usecase.NewBusStopUseCase(stops, active, notifier, logger), stops, cache, stream
}

func TestBusStopUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, stops, _, _ := newBusStopUseCase()

	stops.On("List", ctx, 10, 10).Return([]domain.BusStop{stop(11, "S011", 1, 1)}, 25, nil)

	got, meta, err := uc.List(ctx, utils.NewPage(2, 10))

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func TestBusStopUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults source and invalidates cache", func(t *testing.T) {
		uc, stops, cache, stream := newBusStopUseCase()
		stops.On("Create", ctx, mock.MatchedBy(func(s *domain.BusStop) bool {
			return s.StopID == "S010" && s.Source == domain.StopSourceGenerated && s.IsActive
		})).Return(nil)
		cache.On("InvalidateActiveStops", ctx).Return(nil)
		stream.On("PublishToStream", ctx, domain.StreamAssignmentsRecompute, recomputeEvent(domain.ReasonStopsChanged)).Return(nil)

		got, err := uc.Create(ctx, dto.BusStopRequest{
			StopID:    " S010 ",
			Name:      "Reforma",
			Latitude:  floatPtr(19.43),
			Longitude: floatPtr(-99.13),
		})

		require.NoError(t, err)
		assert.Equal(t, "S010", got.StopID)
		stops.AssertExpectations(t)
		cache.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("conflict is returned untouched", func(t *testing.T) {
		uc, stops, cache, stream := newBusStopUseCase()
		stops.On("Create", ctx, mock.Anything).Return(errors.ErrConflict)

		_, err := uc.Create(ctx, dto.BusStopRequest{StopID: "S001", Latitude: floatPtr(1), Longitude: floatPtr(1)})

		assert.ErrorIs(t, err, errors.ErrConflict)
		cache.AssertNotCalled(t, "InvalidateActiveStops", mock.Anything)
		stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBusStopUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc, stops, cache, stream := newBusStopUseCase()

	existing := stop(3, "S003", 1, 1)
	stops.On("GetByID", ctx, int64(3)).Return(&existing, nil)
	stops.On("Update", ctx, mock.MatchedBy(func(s *domain.BusStop) bool {
		return s.ID == 3 && !s.IsActive && s.Source == domain.StopSourceMoovit
	})).Return(nil)
	cache.On("InvalidateActiveStops", ctx).Return(nil)
	stream.On("PublishToStream", ctx, domain.StreamAssignmentsRecompute, mock.Anything).Return(nil)

	got, err := uc.Update(ctx, 3, dto.BusStopRequest{
		StopID:    "S003",
		Latitude:  floatPtr(2),
		Longitude: floatPtr(2),
		Source:    domain.StopSourceMoovit,
		IsActive:  boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Latitude)
	stops.AssertExpectations(t)
}

func TestBusStopUseCase_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces all stops", func(t *testing.T) {
		uc, stops, cache, stream := newBusStopUseCase()
		csv := "stop_id,name,latitude,longitude,source\nS1,Uno,19.4,-99.1,Moovit\nS2,Dos,19.5,-99.2,\n"

		stops.On("ReplaceAll", ctx, mock.MatchedBy(func(in []domain.BusStop) bool {
			return len(in) == 2 && in[0].StopID == "S1" && in[1].Source == domain.StopSourceGenerated
		})).Return(2, nil)
		cache.On("InvalidateActiveStops", ctx).Return(nil)
		stream.On("PublishToStream", ctx, domain.StreamAssignmentsRecompute, recomputeEvent(domain.ReasonStopsChanged)).Return(nil)

		res, err := uc.Upload(ctx, strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "success", res.Status)
		stops.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("invalid row rejects whole upload", func(t *testing.T) {
		uc, stops, _, _ := newBusStopUseCase()
		csv := "stop_id,name,latitude,longitude\nS1,Uno,19.4,-99.1\nS2,Dos,abc,-99.2\n"

		_, err := uc.Upload(ctx, strings.NewReader(csv))

		assert.ErrorIs(t, err, errors.ErrInvalidUpload)
		stops.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the upload", func(t *testing.T) {
		uc, stops, cache, stream := newBusStopUseCase()
		stops.On("ReplaceAll", ctx, mock.Anything).Return(1, nil)
		cache.On("InvalidateActiveStops", ctx).Return(errors.ErrCacheError)
		stream.On("PublishToStream", ctx, mock.Anything, mock.Anything).Return(errors.ErrCacheError)

		res, err := uc.Upload(ctx, strings.NewReader("stop_id,name,latitude,longitude\nS1,Uno,1,1\n"))

		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
	})
}

func TestBusStopUseCase_DeleteAll(t *testing.T) {
	ctx := context.Background()
	uc, stops, cache, stream := newBusStopUseCase()

	stops.On("DeleteAll", ctx).Return(7, nil)
	cache.On("InvalidateActiveStops", ctx).Return(nil)
	stream.On("PublishToStream", ctx, domain.StreamAssignmentsRecompute, mock.Anything).Return(nil)

	res, err := uc.DeleteAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, res.Deleted)
}
