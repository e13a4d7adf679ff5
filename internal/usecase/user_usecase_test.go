package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
)

func newUserUseCase() (*usecase.UserUseCase, *MockUserRepository, *MockStreamRepository) {
	users := &MockUserRepository{}
	stream := &MockStreamRepository{}
	logger := zap.NewNop()
	return usecase.NewUserUseCase(users, usecase.NewRecomputeNotifier(stream, logger), logger), users, stream
}

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("default ordering and paging", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("List", ctx, domain.UserFilter{
			OrderBy:    "created_at",
			Descending: true,
			Offset:     0,
			Limit:      10,
		}).Return([]domain.User{{ID: 1}}, 1, nil)

		got, meta, err := uc.List(ctx, dto.UserListRequest{})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, meta.TotalPages)
		users.AssertExpectations(t)
	})

	t.Run("filters and ascending ordering", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		users.On("List", ctx, mock.MatchedBy(func(f domain.UserFilter) bool {
			return f.Shift == domain.ShiftMixed8 &&
				f.IsActive != nil && !*f.IsActive &&
				f.OrderBy == "employee_id" && !f.Descending &&
				f.Offset == 40 && f.Limit == 20 &&
				f.Query == "acme"
		})).Return([]domain.User{}, 0, nil)

		_, _, err := uc.List(ctx, dto.UserListRequest{
			Page:     3,
			PageSize: 20,
			Shift:    "mixed_8hrs",
			IsActive: "false",
			Q:        " acme ",
			Ordering: "employee_id",
		})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("unknown ordering", func(t *testing.T) {
		uc, users, _ := newUserUseCase()

		_, _, err := uc.List(ctx, dto.UserListRequest{Ordering: "-password_hash"})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		users.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("invalid is_active", func(t *testing.T) {
		uc, _, _ := newUserUseCase()

		_, _, err := uc.List(ctx, dto.UserListRequest{IsActive: "maybe"})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("location must be a pair", func(t *testing.T) {
		uc, users, _ := newUserUseCase()

		_, err := uc.Update(ctx, 1, dto.UserUpdateRequest{Latitude: floatPtr(19.4)})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("setting location requests recompute", func(t *testing.T) {
		uc, users, stream := newUserUseCase()
		users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Old"}, nil)
		users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Name == "New" && u.Latitude != nil && *u.Latitude == 19.4 && *u.Longitude == -99.1
		})).Return(nil)
		stream.On("PublishToStream", ctx, domain.StreamAssignmentsRecompute, recomputeEvent(domain.ReasonEmployeesChanged)).Return(nil)

		got, err := uc.Update(ctx, 1, dto.UserUpdateRequest{
			Name:      strPtr("New"),
			Latitude:  floatPtr(19.4),
			Longitude: floatPtr(-99.1),
		})

		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		users.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("name change alone does not publish", func(t *testing.T) {
		uc, users, stream := newUserUseCase()
		users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		users.On("Update", ctx, mock.Anything).Return(nil)

		_, err := uc.Update(ctx, 1, dto.UserUpdateRequest{Name: strPtr("Ana")})

		require.NoError(t, err)
		stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newUserUseCase()
	users.On("DeleteByIDs", ctx, []int64{42}).Return(0, nil)

	err := uc.Delete(ctx, 42)

	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("employees cannot register users", func(t *testing.T) {
		uc, users, _ := newUserUseCase()

		_, err := uc.Register(ctx, domain.RoleEmployee, dto.RegisterRequest{Username: "x", Password: "longenough"})

		assert.ErrorIs(t, err, errors.ErrForbidden)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		uc, _, _ := newUserUseCase()

		_, err := uc.Register(ctx, domain.RoleHRAdmin, dto.RegisterRequest{Username: "x", Password: "short"})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("hashes password and normalizes employee id", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		var created *domain.User
		users.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
			created.ID = 10
		}).Return(nil)

		got, err := uc.Register(ctx, domain.RoleMasterAdmin, dto.RegisterRequest{
			Username:   "jperez",
			Password:   "s3cretpass",
			EmployeeID: "37",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), got.ID)
		assert.Equal(t, "00037", created.EmployeeID)
		assert.Equal(t, domain.RoleEmployee, created.Role)
		assert.NotEqual(t, "s3cretpass", created.PasswordHash)
		assert.True(t, auth.CheckPassword(created.PasswordHash, "s3cretpass"))
	})
}

func TestUserUseCase_UpdateConsent(t *testing.T) {
	ctx := context.Background()

	t.Run("accepting stamps accepted_at", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		consent := &domain.PrivacyConsent{UserID: 1, Version: domain.DefaultConsentVersion}
		users.On("GetOrCreateConsent", ctx, int64(1)).Return(consent, nil)
		users.On("SaveConsent", ctx, consent).Return(nil)

		got, err := uc.UpdateConsent(ctx, 1, dto.ConsentUpdateRequest{Accepted: boolPtr(true), LocationGranted: boolPtr(true)})

		require.NoError(t, err)
		assert.True(t, got.Accepted)
		assert.True(t, got.LocationGranted)
		assert.NotNil(t, got.AcceptedAt)
	})

	t.Run("revoking clears accepted_at", func(t *testing.T) {
		uc, users, _ := newUserUseCase()
		acceptedAt := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
		consent := &domain.PrivacyConsent{UserID: 1, Accepted: true, AcceptedAt: &acceptedAt}
		users.On("GetOrCreateConsent", ctx, int64(1)).Return(consent, nil)
		users.On("SaveConsent", ctx, consent).Return(nil)

		got, err := uc.UpdateConsent(ctx, 1, dto.ConsentUpdateRequest{Accepted: boolPtr(false)})

		require.NoError(t, err)
		assert.False(t, got.Accepted)
		assert.Nil(t, got.AcceptedAt)
	})
}
