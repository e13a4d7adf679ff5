package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"go.uber.org/zap"
)

type coverageMeshRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCoverageMeshRepository(db *DB) repository.CoverageMeshRepository {
	return &coverageMeshRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *coverageMeshRepository) List(ctx context.Context) ([]domain.CoverageMesh, error) {
	meshes := []domain.CoverageMesh{}
	query := `SELECT id, name, version, created_at FROM coverage_meshes ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &meshes, query); err != nil {
		r.logger.Error("Failed to list coverage meshes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if len(meshes) == 0 {
		return meshes, nil
	}

	var points []domain.CoverageMeshPoint
	pointsQuery := `
		SELECT mesh_id, latitude, longitude, point_order
		FROM coverage_mesh_points
		ORDER BY mesh_id, point_order
	`
	if err := r.db.SelectContext(ctx, &points, pointsQuery); err != nil {
		r.logger.Error("Failed to list coverage mesh points", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	byMesh := make(map[int64][]domain.CoverageMeshPoint, len(meshes))
	for _, p := range points {
		byMesh[p.MeshID] = append(byMesh[p.MeshID], p)
	}
	for i := range meshes {
		meshes[i].Points = byMesh[meshes[i].ID]
		if meshes[i].Points == nil {
			meshes[i].Points = []domain.CoverageMeshPoint{}
		}
	}

	return meshes, nil
}

func (r *coverageMeshRepository) Summaries(ctx context.Context) ([]domain.CoverageMeshSummary, error) {
	summaries := []domain.CoverageMeshSummary{}
	query := `
		SELECT m.id, m.name, m.version, m.created_at, COUNT(p.id) AS points_count
		FROM coverage_meshes m
		LEFT JOIN coverage_mesh_points p ON p.mesh_id = m.id
		GROUP BY m.id
		ORDER BY m.created_at DESC, m.id DESC
	`
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		r.logger.Error("Failed to summarize coverage meshes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return summaries, nil
}

func (r *coverageMeshRepository) Create(ctx context.Context, mesh *domain.CoverageMesh) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx,
			`INSERT INTO coverage_meshes (name, version) VALUES ($1, $2) RETURNING id, created_at`,
			mesh.Name, mesh.Version,
		).Scan(&mesh.ID, &mesh.CreatedAt)
		if err != nil {
			return err
		}

		for i := range mesh.Points {
			mesh.Points[i].MeshID = mesh.ID
		}

		query := `INSERT INTO coverage_mesh_points (mesh_id, latitude, longitude, point_order) ` +
			`VALUES (:mesh_id, :latitude, :longitude, :point_order)`
		for _, c := range chunks(len(mesh.Points), insertChunkSize) {
			if _, err := tx.NamedExecContext(ctx, query, mesh.Points[c[0]:c[1]]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to create coverage mesh",
			zap.String("name", mesh.Name),
			zap.Int("points", len(mesh.Points)),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *coverageMeshRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coverage_meshes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete coverage mesh", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrNotFound.WithMessage("Coverage mesh not found")
	}
	return nil
}

func (r *coverageMeshRepository) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coverage_meshes`)
	if err != nil {
		r.logger.Error("Failed to delete coverage meshes", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
