package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"go.uber.org/zap"
)

const userColumns = `id, username, name, email, password_hash, role, employee_id, company,
	is_active, active_as_of, employee_status, shift, utilization, latitude, longitude,
	street_name, address_number, neighborhood, postal_code, district, state, country, created_at`

// userOrderColumns - whitelist колонок для сортировки
var userOrderColumns = map[string]string{
	"created_at":  "created_at",
	"username":    "username",
	"name":        "name",
	"email":       "email",
	"employee_id": "employee_id",
	"company":     "company",
	"shift":       "shift",
	"is_active":   "is_active",
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// buildUserWhere renders the filter into a WHERE clause with positional args.
func buildUserWhere(f domain.UserFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Role != "" {
		add("role = $%d", f.Role)
	}
	if f.Shift != "" {
		add("shift = $%d", f.Shift)
	}
	if f.Company != "" {
		add("company = $%d", f.Company)
	}
	if f.IsActive != nil {
		add("is_active = $%d", *f.IsActive)
	}
	if f.EmployeeStatus != "" {
		add("employee_status = $%d", f.EmployeeStatus)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(username ILIKE $%[1]d OR name ILIKE $%[1]d OR email ILIKE $%[1]d OR employee_id ILIKE $%[1]d OR company ILIKE $%[1]d)", n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildUserOrder(f domain.UserFilter) string {
	col, ok := userOrderColumns[f.OrderBy]
	if !ok {
		return " ORDER BY created_at DESC, id DESC"
	}
	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	where, args := buildUserWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`+where, args...); err != nil {
		r.logger.Error("Failed to count users", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + buildUserOrder(filter)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	return users, total, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound.WithMessage("User not found")
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.Any("key", arg), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

const userInsert = `
	INSERT INTO users (username, name, email, password_hash, role, employee_id, company,
		is_active, active_as_of, employee_status, shift, utilization, latitude, longitude,
		street_name, address_number, neighborhood, postal_code, district, state, country)
	VALUES (:username, :name, :email, :password_hash, :role, :employee_id, :company,
		:is_active, :active_as_of, :employee_status, :shift, :utilization, :latitude, :longitude,
		:street_name, :address_number, :neighborhood, :postal_code, :district, :state, :country)`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := r.db.BindNamed(userInsert+` RETURNING id, created_at`, user)
	if err != nil {
		r.logger.Error("Failed to bind user insert", zap.Error(err))
		return errors.ErrInternalServer
	}

	err = r.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return errors.ErrConflict.WithMessage("User with this username or employee_id already exists")
	}
	if err != nil {
		r.logger.Error("Failed to create user", zap.String("username", user.Username), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			name = :name, email = :email, role = :role, employee_id = :employee_id,
			company = :company, is_active = :is_active, active_as_of = :active_as_of,
			employee_status = :employee_status, shift = :shift, utilization = :utilization,
			latitude = :latitude, longitude = :longitude, street_name = :street_name,
			address_number = :address_number, neighborhood = :neighborhood,
			postal_code = :postal_code, district = :district, state = :state, country = :country
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if isUniqueViolation(err) {
		return errors.ErrConflict.WithMessage("User with this employee_id already exists")
	}
	if err != nil {
		r.logger.Error("Failed to update user", zap.Int64("id", user.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrNotFound.WithMessage("User not found")
	}
	return nil
}

func (r *userRepository) DeleteByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ANY($1)`, pq.Int64Array(ids))
	if err != nil {
		r.logger.Error("Failed to delete users", zap.Int("count", len(ids)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *userRepository) ExistingEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(employeeIDs) == 0 {
		return existing, nil
	}

	var found []string
	err := r.db.SelectContext(ctx, &found,
		`SELECT employee_id FROM users WHERE employee_id = ANY($1)`, pq.StringArray(employeeIDs))
	if err != nil {
		r.logger.Error("Failed to look up employee ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

func (r *userRepository) CreateBatch(ctx context.Context, users []domain.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, c := range chunks(len(users), insertChunkSize/50) {
			if _, err := tx.NamedExecContext(ctx, userInsert, users[c[0]:c[1]]); err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return 0, errors.ErrConflict.WithMessage("Duplicate username or employee_id in batch")
	}
	if err != nil {
		r.logger.Error("Failed to create users", zap.Int("count", len(users)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return len(users), nil
}

func (r *userRepository) SyncActiveEmployees(ctx context.Context, employeeIDs []string, asOf time.Time) (int, error) {
	if employeeIDs == nil {
		// a NULL array would make is_active NULL
		employeeIDs = []string{}
	}
	query := `
		UPDATE users SET
			is_active = (employee_id = ANY($1)),
			employee_status = CASE WHEN employee_id = ANY($1) THEN 'active' ELSE 'terminated' END,
			active_as_of = CASE WHEN employee_id = ANY($1) THEN $2 ELSE active_as_of END
		WHERE employee_id <> ''
		  AND is_active IS DISTINCT FROM (employee_id = ANY($1))
	`
	res, err := r.db.ExecContext(ctx, query, pq.StringArray(employeeIDs), asOf)
	if err != nil {
		r.logger.Error("Failed to sync active employees", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *userRepository) ListWithLocation(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT ` + userColumns + ` FROM users
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		r.logger.Error("Failed to list users with location", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return users, nil
}

func (r *userRepository) Counts(ctx context.Context) (*domain.UserCounts, error) {
	var counts domain.UserCounts
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE role = 'EMPLOYEE') AS employees,
			COUNT(*) FILTER (WHERE is_active) AS active,
			COUNT(*) FILTER (WHERE latitude IS NOT NULL AND longitude IS NOT NULL) AS with_location,
			COUNT(*) FILTER (WHERE employee_status = 'terminated') AS terminated
		FROM users
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.logger.Error("Failed to count users", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &counts, nil
}

func (r *userRepository) GetOrCreateConsent(ctx context.Context, userID int64) (*domain.PrivacyConsent, error) {
	query := `
		INSERT INTO privacy_consents (user_id, version)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, accepted, accepted_at, version, location_granted
	`
	var consent domain.PrivacyConsent
	err := r.db.GetContext(ctx, &consent, query, userID, domain.DefaultConsentVersion)
	if isForeignKeyViolation(err) {
		return nil, errors.ErrNotFound.WithMessage("User not found")
	}
	if err != nil {
		r.logger.Error("Failed to get consent", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &consent, nil
}

func (r *userRepository) SaveConsent(ctx context.Context, consent *domain.PrivacyConsent) error {
	query := `
		INSERT INTO privacy_consents (user_id, accepted, accepted_at, version, location_granted)
		VALUES (:user_id, :accepted, :accepted_at, :version, :location_granted)
		ON CONFLICT (user_id) DO UPDATE SET
			accepted = EXCLUDED.accepted,
			accepted_at = EXCLUDED.accepted_at,
			version = EXCLUDED.version,
			location_granted = EXCLUDED.location_granted
	`
	if _, err := r.db.NamedExecContext(ctx, query, consent); err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrNotFound.WithMessage("User not found")
		}
		r.logger.Error("Failed to save consent", zap.Int64("user_id", consent.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
