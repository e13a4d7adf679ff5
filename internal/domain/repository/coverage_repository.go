package repository

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
)

// CoverageMeshRepository определяет методы для работы с зонами покрытия
type CoverageMeshRepository interface {
	// List returns every mesh with its points ordered by point order
	List(ctx context.Context) ([]domain.CoverageMesh, error)

	Summaries(ctx context.Context) ([]domain.CoverageMeshSummary, error)

	// Create stores the mesh and its points atomically and fills mesh.ID
	Create(ctx context.Context, mesh *domain.CoverageMesh) error

	// Delete removes a mesh by id. Returns errors.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every mesh and returns how many were deleted
	DeleteAll(ctx context.Context) (int, error)
}
