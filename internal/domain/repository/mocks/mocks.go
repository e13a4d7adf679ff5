// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
)

var (
	_ repository.BusStopRepository      = (*MockBusStopRepository)(nil)
	_ repository.CoverageMeshRepository = (*MockCoverageMeshRepository)(nil)
	_ repository.RoutePlanRepository    = (*MockRoutePlanRepository)(nil)
	_ repository.UserRepository         = (*MockUserRepository)(nil)
	_ repository.AssignmentRepository   = (*MockAssignmentRepository)(nil)
	_ repository.CacheRepository        = (*MockCacheRepository)(nil)
	_ repository.StreamRepository       = (*MockStreamRepository)(nil)
)

// MockBusStopRepository - мок для BusStopRepository
type MockBusStopRepository struct {
	mock.Mock
}

func (m *MockBusStopRepository) List(ctx context.Context, offset, limit int) ([]domain.BusStop, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BusStop), args.Int(1), args.Error(2)
}

func (m *MockBusStopRepository) ListActive(ctx context.Context) ([]domain.BusStop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) Create(ctx context.Context, stop *domain.BusStop) error {
	args := m.Called(ctx, stop)
	return args.Error(0)
}

func (m *MockBusStopRepository) Update(ctx context.Context, stop *domain.BusStop) error {
	args := m.Called(ctx, stop)
	return args.Error(0)
}

func (m *MockBusStopRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBusStopRepository) ReplaceAll(ctx context.Context, stops []domain.BusStop) (int, error) {
	args := m.Called(ctx, stops)
	return args.Int(0), args.Error(1)
}

func (m *MockBusStopRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBusStopRepository) Counts(ctx context.Context) (*domain.BusStopCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStopCounts), args.Error(1)
}

// MockCoverageMeshRepository - мок для CoverageMeshRepository
type MockCoverageMeshRepository struct {
	mock.Mock
}

func (m *MockCoverageMeshRepository) List(ctx context.Context) ([]domain.CoverageMesh, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoverageMesh), args.Error(1)
}

func (m *MockCoverageMeshRepository) Summaries(ctx context.Context) ([]domain.CoverageMeshSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoverageMeshSummary), args.Error(1)
}

func (m *MockCoverageMeshRepository) Create(ctx context.Context, mesh *domain.CoverageMesh) error {
	args := m.Called(ctx, mesh)
	return args.Error(0)
}

func (m *MockCoverageMeshRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCoverageMeshRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockRoutePlanRepository - мок для RoutePlanRepository
type MockRoutePlanRepository struct {
	mock.Mock
}

func (m *MockRoutePlanRepository) List(ctx context.Context) ([]domain.RoutePlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) GetByID(ctx context.Context, id int64) (*domain.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) GetActive(ctx context.Context) (*domain.RoutePlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) Activate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoutePlanRepository) CreateRoute(ctx context.Context, upload domain.RouteUpload) (*domain.RouteUploadResult, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteUploadResult), args.Error(1)
}

func (m *MockRoutePlanRepository) Delete(ctx context.Context, routeID, planID *int64) (int, error) {
	args := m.Called(ctx, routeID, planID)
	return args.Int(0), args.Error(1)
}

func (m *MockRoutePlanRepository) Summaries(ctx context.Context) ([]domain.RoutePlanSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoutePlanSummary), args.Error(1)
}

// MockUserRepository - мок для UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByIDs(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ExistingEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]struct{}, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *MockUserRepository) CreateBatch(ctx context.Context, users []domain.User) (int, error) {
	args := m.Called(ctx, users)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SyncActiveEmployees(ctx context.Context, employeeIDs []string, asOf time.Time) (int, error) {
	args := m.Called(ctx, employeeIDs, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ListWithLocation(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Counts(ctx context.Context) (*domain.UserCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCounts), args.Error(1)
}

func (m *MockUserRepository) GetOrCreateConsent(ctx context.Context, userID int64) (*domain.PrivacyConsent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrivacyConsent), args.Error(1)
}

func (m *MockUserRepository) SaveConsent(ctx context.Context, consent *domain.PrivacyConsent) error {
	args := m.Called(ctx, consent)
	return args.Error(0)
}

// MockAssignmentRepository - мок для AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ReplaceAll(ctx context.Context, assignments []domain.EmployeeAssignment) error {
	args := m.Called(ctx, assignments)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.EmployeeAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Summary(ctx context.Context) (*domain.AssignmentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentSummary), args.Error(1)
}

// MockCacheRepository - мок для CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) GetActivePlan(ctx context.Context) (*domain.RoutePlan, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.RoutePlan), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) ActivePlanGeneration(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) SetActivePlan(ctx context.Context, plan *domain.RoutePlan, ttl time.Duration, gen int64) error {
	args := m.Called(ctx, plan, ttl, gen)
	return args.Error(0)
}

func (m *MockCacheRepository) GetActiveStops(ctx context.Context) ([]domain.BusStop, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.BusStop), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) ActiveStopsGeneration(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) SetActiveStops(ctx context.Context, stops []domain.BusStop, ttl time.Duration, gen int64) error {
	args := m.Called(ctx, stops, ttl, gen)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateActivePlan(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateActiveStops(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStreamRepository - мок для StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, ids ...string) error {
	args := m.Called(ctx, stream, group, ids)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
