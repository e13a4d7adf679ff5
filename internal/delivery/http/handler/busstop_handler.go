package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/pkg/validator"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// BusStopHandler - CRUD остановок
type BusStopHandler struct {
	busStopUC *usecase.BusStopUseCase
	logger    *zap.Logger
}

// NewBusStopHandler - создание нового BusStopHandler
func NewBusStopHandler(busStopUC *usecase.BusStopUseCase, logger *zap.Logger) *BusStopHandler {
	return &BusStopHandler{
		busStopUC: busStopUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список остановок
// @Description Упорядочен по stop_id
// @Tags BusStops
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param page_size query int false "Размер страницы (максимум 200)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.BusStop}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops [get]
func (h *BusStopHandler) List(c *fiber.Ctx) error {
	page := utils.NewPage(c.QueryInt("page", 1), c.QueryInt("page_size", utils.DefaultPageSize))

	stops, meta, err := h.busStopUC.List(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stops, meta)
}

// Get godoc
// @Summary Остановка по ID
// @Tags BusStops
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID остановки"
// @Success 200 {object} utils.SuccessResponse{data=domain.BusStop}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [get]
func (h *BusStopHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stop, err := h.busStopUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stop, nil)
}

// Create godoc
// @Summary Создание остановки
// @Tags BusStops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BusStopRequest true "Остановка"
// @Success 201 {object} utils.SuccessResponse{data=domain.BusStop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops [post]
func (h *BusStopHandler) Create(c *fiber.Ctx) error {
	var req dto.BusStopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stop, err := h.busStopUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, stop)
}

// Update godoc
// @Summary Изменение остановки
// @Tags BusStops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID остановки"
// @Param request body dto.BusStopRequest true "Остановка"
// @Success 200 {object} utils.SuccessResponse{data=domain.BusStop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [put]
func (h *BusStopHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BusStopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stop, err := h.busStopUC.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stop, nil)
}

// Delete godoc
// @Summary Удаление остановки
// @Tags BusStops
// @Security BearerAuth
// @Param id path int true "ID остановки"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bus-stops/{id} [delete]
func (h *BusStopHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.busStopUC.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
