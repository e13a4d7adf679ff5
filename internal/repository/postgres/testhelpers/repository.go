package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewBusStopRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BusStopRepository {
	return postgres.NewBusStopRepository(NewDBForTest(db, logger))
}

func NewCoverageMeshRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CoverageMeshRepository {
	return postgres.NewCoverageMeshRepository(NewDBForTest(db, logger))
}

func NewRoutePlanRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RoutePlanRepository {
	return postgres.NewRoutePlanRepository(NewDBForTest(db, logger))
}

func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

func NewAssignmentRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AssignmentRepository {
	return postgres.NewAssignmentRepository(NewDBForTest(db, logger))
}
