package repository

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
)

// BusStopRepository определяет методы для работы с остановками
type BusStopRepository interface {
	// List returns a page of stops ordered by stop_id and the total count
	List(ctx context.Context, offset, limit int) ([]domain.BusStop, int, error)

	// ListActive returns every active stop ordered by stop_id
	ListActive(ctx context.Context) ([]domain.BusStop, error)

	GetByID(ctx context.Context, id int64) (*domain.BusStop, error)
	Create(ctx context.Context, stop *domain.BusStop) error
	Update(ctx context.Context, stop *domain.BusStop) error
	Delete(ctx context.Context, id int64) error

	// ReplaceAll deletes every stop and inserts the given ones in a single transaction
	ReplaceAll(ctx context.Context, stops []domain.BusStop) (int, error)

	// DeleteAll removes every stop and returns how many were deleted
	DeleteAll(ctx context.Context) (int, error)

	Counts(ctx context.Context) (*domain.BusStopCounts, error)
}
