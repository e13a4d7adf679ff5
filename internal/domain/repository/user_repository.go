package repository

import (
	"context"
	"time"

	"github.com/shuttle-hr/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// List returns a filtered page of users and the total matching count
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)

	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error

	// DeleteByIDs removes users by primary key and returns the number deleted
	DeleteByIDs(ctx context.Context, ids []int64) (int, error)

	// ExistingEmployeeIDs returns the subset of ids already present
	ExistingEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]struct{}, error)

	// CreateBatch inserts the users in a single transaction
	CreateBatch(ctx context.Context, users []domain.User) (int, error)

	// SyncActiveEmployees sets is_active = (employee_id in employeeIDs) for every
	// user with an employee id. Returns the number of users whose flag changed.
	SyncActiveEmployees(ctx context.Context, employeeIDs []string, asOf time.Time) (int, error)

	// ListWithLocation returns employees that have both latitude and longitude
	ListWithLocation(ctx context.Context) ([]domain.User, error)

	Counts(ctx context.Context) (*domain.UserCounts, error)

	// GetOrCreateConsent returns the user's consent row, creating a default one
	GetOrCreateConsent(ctx context.Context, userID int64) (*domain.PrivacyConsent, error)
	SaveConsent(ctx context.Context, consent *domain.PrivacyConsent) error
}
