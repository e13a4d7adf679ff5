package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// userOrdering - поля, допустимые в параметре ordering
var userOrdering = map[string]bool{
	"created_at":  true,
	"username":    true,
	"name":        true,
	"email":       true,
	"employee_id": true,
	"company":     true,
	"shift":       true,
	"is_active":   true,
}

type UserUseCase struct {
	userRepo repository.UserRepository
	notifier *RecomputeNotifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	notifier *RecomputeNotifier,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *UserUseCase) List(ctx context.Context, req dto.UserListRequest) ([]domain.User, *utils.Meta, error) {
	page := utils.NewPage(req.Page, req.PageSize)

	filter := domain.UserFilter{
		Shift:          strings.ToUpper(strings.TrimSpace(req.Shift)),
		Company:        strings.TrimSpace(req.Company),
		EmployeeStatus: strings.TrimSpace(req.EmployeeStatus),
		Query:          strings.TrimSpace(req.Q),
		OrderBy:        "created_at",
		Descending:     true,
		Offset:         page.Offset(),
		Limit:          page.Size,
	}

	if s := strings.TrimSpace(req.IsActive); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			return nil, nil, errors.ErrInvalidRequest.WithMessage("is_active must be true or false")
		}
		filter.IsActive = &active
	}

	if o := strings.TrimSpace(req.Ordering); o != "" {
		desc := strings.HasPrefix(o, "-")
		field := strings.TrimPrefix(o, "-")
		if !userOrdering[field] {
			return nil, nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("Unsupported ordering %q", o))
		}
		filter.OrderBy = field
		filter.Descending = desc
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return users, &utils.Meta{
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// Update applies a partial update. Latitude and longitude must be sent together.
func (uc *UserUseCase) Update(ctx context.Context, id int64, req dto.UserUpdateRequest) (*domain.User, error) {
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, errors.ErrInvalidRequest.WithMessage("latitude and longitude must be set together")
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hadLocation := user.Latitude != nil
	patch := domain.UserPatch{
		Name:           req.Name,
		Email:          req.Email,
		Utilization:    req.Utilization,
		Shift:          req.Shift,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ClearLocation:  req.ClearLocation,
		StreetName:     req.StreetName,
		AddressNumber:  req.AddressNumber,
		Neighborhood:   req.Neighborhood,
		PostalCode:     req.PostalCode,
		District:       req.District,
		State:          req.State,
		Country:        req.Country,
		Company:        req.Company,
		IsActive:       req.IsActive,
		EmployeeStatus: req.EmployeeStatus,
		ActiveAsOf:     req.ActiveAsOf,
	}
	patch.Apply(user)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Latitude != nil || (req.ClearLocation && hadLocation) || req.IsActive != nil {
		uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	}
	return user, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.userRepo.DeleteByIDs(ctx, []int64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.ErrNotFound.WithMessage("User not found")
	}

	uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	return nil
}

// Register creates a user on behalf of an HR or master admin.
func (uc *UserUseCase) Register(ctx context.Context, callerRole string, req dto.RegisterRequest) (*domain.User, error) {
	if !domain.IsAdminRole(callerRole) {
		return nil, errors.ErrForbidden.WithMessage("Only HR or master admins can register users")
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, errors.ErrInvalidRequest.WithMessage(
			fmt.Sprintf("Password must be at least %d characters", auth.MinPasswordLength))
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, errors.ErrInvalidRequest.WithMessage("latitude and longitude must be set together")
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.IsValidRole(role) {
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("Unknown role %q", req.Role))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Username:       strings.TrimSpace(req.Username),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		PasswordHash:   hash,
		Role:           role,
		EmployeeID:     domain.NormalizeEmployeeID(req.EmployeeID),
		Company:        strings.TrimSpace(req.Company),
		IsActive:       true,
		EmployeeStatus: domain.EmployeeStatusActive,
		Shift:          req.Shift,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
	if user.Latitude != nil {
		uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	}
	return user, nil
}

// Consent returns the user's privacy consent, creating the default one on first access.
func (uc *UserUseCase) Consent(ctx context.Context, userID int64) (*domain.PrivacyConsent, error) {
	return uc.userRepo.GetOrCreateConsent(ctx, userID)
}

func (uc *UserUseCase) UpdateConsent(ctx context.Context, userID int64, req dto.ConsentUpdateRequest) (*domain.PrivacyConsent, error) {
	consent, err := uc.userRepo.GetOrCreateConsent(ctx, userID)
	if err != nil {
		return nil, err
	}

	consent.Apply(domain.ConsentChange{
		Accepted:        req.Accepted,
		LocationGranted: req.LocationGranted,
		Version:         req.Version,
	}, uc.now().UTC())

	if err := uc.userRepo.SaveConsent(ctx, consent); err != nil {
		return nil, err
	}
	return consent, nil
}
