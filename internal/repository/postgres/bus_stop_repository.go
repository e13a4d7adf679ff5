package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"go.uber.org/zap"
)

const busStopColumns = `id, stop_id, name, latitude, longitude, source, is_active, created_at`

type busStopRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBusStopRepository(db *DB) repository.BusStopRepository {
	return &busStopRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *busStopRepository) List(ctx context.Context, offset, limit int) ([]domain.BusStop, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bus_stops`); err != nil {
		r.logger.Error("Failed to count bus stops", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	stops := []domain.BusStop{}
	query := `SELECT ` + busStopColumns + ` FROM bus_stops ORDER BY stop_id LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &stops, query, limit, offset); err != nil {
		r.logger.Error("Failed to list bus stops", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return stops, total, nil
}

func (r *busStopRepository) ListActive(ctx context.Context) ([]domain.BusStop, error) {
	stops := []domain.BusStop{}
	query := `SELECT ` + busStopColumns + ` FROM bus_stops WHERE is_active ORDER BY stop_id`
	if err := r.db.SelectContext(ctx, &stops, query); err != nil {
		r.logger.Error("Failed to list active bus stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stops, nil
}

func (r *busStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	var stop domain.BusStop
	err := r.db.GetContext(ctx, &stop, `SELECT `+busStopColumns+` FROM bus_stops WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound.WithMessage("Bus stop not found")
	}
	if err != nil {
		r.logger.Error("Failed to get bus stop", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &stop, nil
}

func (r *busStopRepository) Create(ctx context.Context, stop *domain.BusStop) error {
	query := `
		INSERT INTO bus_stops (stop_id, name, latitude, longitude, source, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		stop.StopID, stop.Name, stop.Latitude, stop.Longitude, stop.Source, stop.IsActive,
	).Scan(&stop.ID, &stop.CreatedAt)
	if isUniqueViolation(err) {
		return errors.ErrConflict.WithMessage("Bus stop with this stop_id already exists")
	}
	if err != nil {
		r.logger.Error("Failed to create bus stop", zap.String("stop_id", stop.StopID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *busStopRepository) Update(ctx context.Context, stop *domain.BusStop) error {
	query := `
		UPDATE bus_stops
		SET stop_id = $2, name = $3, latitude = $4, longitude = $5, source = $6, is_active = $7
		WHERE id = $1
		RETURNING created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		stop.ID, stop.StopID, stop.Name, stop.Latitude, stop.Longitude, stop.Source, stop.IsActive,
	).Scan(&stop.CreatedAt)
	if err == sql.ErrNoRows {
		return errors.ErrNotFound.WithMessage("Bus stop not found")
	}
	if isUniqueViolation(err) {
		return errors.ErrConflict.WithMessage("Bus stop with this stop_id already exists")
	}
	if err != nil {
		r.logger.Error("Failed to update bus stop", zap.Int64("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *busStopRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bus_stops WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete bus stop", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrNotFound.WithMessage("Bus stop not found")
	}
	return nil
}

// ReplaceAll swaps the whole stop set inside one transaction so readers never
// observe an empty or half-loaded table.
func (r *busStopRepository) ReplaceAll(ctx context.Context, stops []domain.BusStop) (int, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bus_stops`); err != nil {
			return err
		}

		query := `INSERT INTO bus_stops (stop_id, name, latitude, longitude, source, is_active) ` +
			`VALUES (:stop_id, :name, :latitude, :longitude, :source, :is_active)`
		for _, c := range chunks(len(stops), insertChunkSize) {
			if _, err := tx.NamedExecContext(ctx, query, stops[c[0]:c[1]]); err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return 0, errors.ErrInvalidUpload.WithMessage("Duplicate stop_id in upload")
	}
	if err != nil {
		r.logger.Error("Failed to replace bus stops", zap.Int("count", len(stops)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	r.logger.Info("Bus stops replaced", zap.Int("count", len(stops)))
	return len(stops), nil
}

func (r *busStopRepository) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bus_stops`)
	if err != nil {
		r.logger.Error("Failed to delete bus stops", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *busStopRepository) Counts(ctx context.Context) (*domain.BusStopCounts, error) {
	var counts domain.BusStopCounts
	query := `SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE is_active) AS active FROM bus_stops`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.logger.Error("Failed to count bus stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	counts.Inactive = counts.Total - counts.Active
	return &counts, nil
}
