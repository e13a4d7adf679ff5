package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/delivery/http/middleware"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/pkg/validator"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapHandler - карта сотрудника: местоположение, остановки, маршруты, покрытие
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// EmployeeLocation godoc
// @Summary Местоположение сотрудника
// @Description Возвращает зарегистрированные координаты текущего пользователя
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/employee/location [get]
func (h *MapHandler) EmployeeLocation(c *fiber.Ctx) error {
	result, err := h.mapUC.EmployeeLocation(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// NearestStop godoc
// @Summary Ближайшая остановка
// @Description Ближайшая активная остановка по расстоянию большого круга. При равенстве расстояний побеждает остановка с меньшим stop_id.
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.NearestStopResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/stops/nearest [get]
func (h *MapHandler) NearestStop(c *fiber.Ctx) error {
	result, err := h.mapUC.NearestStop(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// NearbyStops godoc
// @Summary Остановки рядом
// @Description До limit активных остановок, отсортированных по расстоянию. Без местоположения сортировка по stop_id и без distance_m.
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Количество остановок (максимум 500)" default(100)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.NearbyStopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/map/stops/nearby [get]
func (h *MapHandler) NearbyStops(c *fiber.Ctx) error {
	var req dto.NearbyStopsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// без limit используется значение по умолчанию
	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	result, err := h.mapUC.NearbyStops(c.UserContext(), middleware.UserID(c), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// EmployeeRoutes godoc
// @Summary Маршруты активного плана
// @Description Активный план с маршрутами, остановками и трекпоинтами. Если активного плана нет, {"routes": []}.
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.EmployeeRoutesResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/map/routes/employee [get]
func (h *MapHandler) EmployeeRoutes(c *fiber.Ctx) error {
	result, err := h.mapUC.EmployeeRoutes(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// EmployeeCoverage godoc
// @Summary Покрытие сотрудника
// @Description Зоны покрытия, содержащие местоположение текущего пользователя
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.EmployeeCoverageResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/coverage/employee [get]
func (h *MapHandler) EmployeeCoverage(c *fiber.Ctx) error {
	result, err := h.mapUC.EmployeeCoverage(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Assignment godoc
// @Summary Назначение сотрудника
// @Description Последнее вычисленное воркером назначение: ближайшая остановка и зоны покрытия
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.EmployeeAssignment}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/assignment [get]
func (h *MapHandler) Assignment(c *fiber.Ctx) error {
	result, err := h.mapUC.Assignment(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
