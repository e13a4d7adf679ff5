package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"go.uber.org/zap"
)

// assignmentRow mirrors employee_assignments; mesh_ids needs an array type.
type assignmentRow struct {
	UserID     int64         `db:"user_id"`
	EmployeeID string        `db:"employee_id"`
	BusStopID  *int64        `db:"bus_stop_id"`
	StopName   string        `db:"stop_name"`
	DistanceM  *float64      `db:"distance_m"`
	MeshIDs    pq.Int64Array `db:"mesh_ids"`
	ComputedAt time.Time     `db:"computed_at"`
}

func toAssignmentRow(a domain.EmployeeAssignment) assignmentRow {
	meshIDs := pq.Int64Array(a.MeshIDs)
	if meshIDs == nil {
		meshIDs = pq.Int64Array{}
	}
	return assignmentRow{
		UserID:     a.UserID,
		EmployeeID: a.EmployeeID,
		BusStopID:  a.BusStopID,
		StopName:   a.StopName,
		DistanceM:  a.DistanceM,
		MeshIDs:    meshIDs,
		ComputedAt: a.ComputedAt,
	}
}

func (row assignmentRow) toDomain() domain.EmployeeAssignment {
	meshIDs := []int64(row.MeshIDs)
	if meshIDs == nil {
		meshIDs = []int64{}
	}
	return domain.EmployeeAssignment{
		UserID:     row.UserID,
		EmployeeID: row.EmployeeID,
		BusStopID:  row.BusStopID,
		StopName:   row.StopName,
		DistanceM:  row.DistanceM,
		MeshIDs:    meshIDs,
		ComputedAt: row.ComputedAt,
	}
}

type assignmentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAssignmentRepository(db *DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *assignmentRepository) ReplaceAll(ctx context.Context, assignments []domain.EmployeeAssignment) error {
	rows := make([]assignmentRow, len(assignments))
	for i, a := range assignments {
		rows[i] = toAssignmentRow(a)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM employee_assignments`); err != nil {
			return err
		}

		query := `INSERT INTO employee_assignments ` +
			`(user_id, employee_id, bus_stop_id, stop_name, distance_m, mesh_ids, computed_at) ` +
			`VALUES (:user_id, :employee_id, :bus_stop_id, :stop_name, :distance_m, :mesh_ids, :computed_at)`
		for _, c := range chunks(len(rows), insertChunkSize/10) {
			if _, err := tx.NamedExecContext(ctx, query, rows[c[0]:c[1]]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace assignments", zap.Int("count", len(rows)), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *assignmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.EmployeeAssignment, error) {
	var row assignmentRow
	query := `
		SELECT user_id, employee_id, bus_stop_id, stop_name, distance_m, mesh_ids, computed_at
		FROM employee_assignments
		WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &row, query, userID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound.WithMessage("Assignment not computed yet")
	}
	if err != nil {
		r.logger.Error("Failed to get assignment", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	a := row.toDomain()
	return &a, nil
}

func (r *assignmentRepository) Summary(ctx context.Context) (*domain.AssignmentSummary, error) {
	var summary domain.AssignmentSummary
	query := `
		SELECT
			COUNT(*) AS employees,
			COUNT(*) FILTER (WHERE cardinality(mesh_ids) > 0) AS covered,
			COUNT(*) FILTER (WHERE cardinality(mesh_ids) = 0) AS uncovered,
			MAX(computed_at) AS computed_at
		FROM employee_assignments
	`
	if err := r.db.GetContext(ctx, &summary, query); err != nil {
		r.logger.Error("Failed to summarize assignments", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &summary, nil
}
