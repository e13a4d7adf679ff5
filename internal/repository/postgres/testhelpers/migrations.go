package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shuttle-hr/internal/repository/postgres"
	"go.uber.org/zap"
)

// ApplyMigrations brings the test database schema up to date using the same
// runner as cmd/migrate. Already applied versions are skipped.
func ApplyMigrations(db *sqlx.DB, migrationsPath string) error {
	_, err := postgres.NewDBForTest(db, zap.NewNop()).Migrate(context.Background(), migrationsPath)
	return err
}
