package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/delivery/http/middleware"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/pkg/validator"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserHandler - пользователи, профиль, регистрация и согласие
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// selfOrAdmin - сотрудник видит и меняет только себя
func selfOrAdmin(c *fiber.Ctx, id int64) error {
	if id == middleware.UserID(c) || domain.IsAdminRole(middleware.Role(c)) {
		return nil
	}
	return errors.ErrForbidden
}

// Me godoc
// @Summary Текущий пользователь
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/me [get]
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userUC.Get(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// UpdateMe godoc
// @Summary Обновление своего профиля
// @Description Частичное обновление. latitude и longitude задаются только парой, clear_location сбрасывает обе.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserUpdateRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	return h.update(c, middleware.UserID(c))
}

// Protected godoc
// @Summary Проверка токена
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/protected [get]
func (h *UserHandler) Protected(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"message": "You have access to this protected endpoint",
		"user_id": middleware.UserID(c),
		"role":    middleware.Role(c),
	}, nil)
}

// List godoc
// @Summary Список пользователей
// @Description Фильтры shift, company, is_active, employee_status, q. ordering по белому списку полей, "-" для убывания.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param page_size query int false "Размер страницы (максимум 200)" default(10)
// @Param shift query string false "Смена"
// @Param company query string false "Компания"
// @Param is_active query bool false "Активность"
// @Param employee_status query string false "active или terminated"
// @Param q query string false "Поиск по username, email, employee_id, company"
// @Param ordering query string false "Сортировка" default(-created_at)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	if !domain.IsAdminRole(middleware.Role(c)) {
		return utils.SendError(c, errors.ErrForbidden)
	}

	var req dto.UserListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	users, meta, err := h.userUC.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users, meta)
}

// Get godoc
// @Summary Пользователь по ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := selfOrAdmin(c, id); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// Update godoc
// @Summary Частичное обновление пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.UserUpdateRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := selfOrAdmin(c, id); err != nil {
		return utils.SendError(c, err)
	}
	return h.update(c, id)
}

func (h *UserHandler) update(c *fiber.Ctx, id int64) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// Delete godoc
// @Summary Удаление пользователя
// @Tags Users
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if !domain.IsAdminRole(middleware.Role(c)) {
		return utils.SendError(c, errors.ErrForbidden)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.userUC.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Доступно HR_ADMIN и MASTER_ADMIN. Пароль не короче 8 символов, роль по умолчанию EMPLOYEE.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Данные пользователя"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Register(c.UserContext(), middleware.Role(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, user)
}

// Consent godoc
// @Summary Согласие на обработку данных
// @Description Создаётся с значениями по умолчанию при первом обращении
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.ConsentResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/privacy-consent [get]
func (h *UserHandler) Consent(c *fiber.Ctx) error {
	consent, err := h.userUC.Consent(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewConsentResponse(consent), nil)
}

// UpdateConsent godoc
// @Summary Изменение согласия
// @Description accepted_at выставляется при первом принятии и сбрасывается при отзыве
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConsentUpdateRequest true "Изменения"
// @Success 200 {object} utils.SuccessResponse{data=dto.ConsentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/privacy-consent [patch]
func (h *UserHandler) UpdateConsent(c *fiber.Ctx) error {
	var req dto.ConsentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	consent, err := h.userUC.UpdateConsent(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewConsentResponse(consent), nil)
}
