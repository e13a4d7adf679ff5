package postgres_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/shuttle-hr/internal/repository/postgres/testhelpers"
)

const (
	migrationsPath = "../../../migrations"
	fixturesPath   = "testdata/fixtures"
)

// dbSuite - общая база для интеграционных тестов репозиториев
type dbSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	ctx      context.Context
	fixtures []string
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *dbSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB, migrationsPath)
	s.Require().NoError(err, "Failed to apply migrations")
}

// TearDownSuite выполняется один раз после всех тестов
func (s *dbSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest resets every table and reloads the suite fixtures
func (s *dbSuite) SetupTest() {
	s.ctx = context.Background()

	s.Require().NoError(s.testDB.Cleanup(s.ctx), "Failed to cleanup test database")
	err := testhelpers.LoadFixtures(s.testDB.DB.DB, fixturesPath, s.fixtures)
	s.Require().NoError(err, "Failed to load fixtures")
}
