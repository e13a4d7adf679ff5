package repository

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
)

// AssignmentRepository stores precomputed employee assignments
type AssignmentRepository interface {
	// ReplaceAll swaps the full assignment table in one transaction
	ReplaceAll(ctx context.Context, assignments []domain.EmployeeAssignment) error

	GetByUserID(ctx context.Context, userID int64) (*domain.EmployeeAssignment, error)
	Summary(ctx context.Context) (*domain.AssignmentSummary, error)
}
