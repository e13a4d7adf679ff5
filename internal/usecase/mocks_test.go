package usecase_test

import "github.com/shuttle-hr/internal/domain/repository/mocks"

type (
	MockBusStopRepository      = mocks.MockBusStopRepository
	MockCoverageMeshRepository = mocks.MockCoverageMeshRepository
	MockRoutePlanRepository    = mocks.MockRoutePlanRepository
	MockUserRepository         = mocks.MockUserRepository
	MockAssignmentRepository   = mocks.MockAssignmentRepository
	MockCacheRepository        = mocks.MockCacheRepository
	MockStreamRepository       = mocks.MockStreamRepository
)

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
