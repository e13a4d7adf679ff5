package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/usecase"
	"go.uber.org/zap"
)

// RoutePlanHandler - планы маршрутов
type RoutePlanHandler struct {
	routePlanUC *usecase.RoutePlanUseCase
	logger      *zap.Logger
}

// NewRoutePlanHandler - создание нового RoutePlanHandler
func NewRoutePlanHandler(routePlanUC *usecase.RoutePlanUseCase, logger *zap.Logger) *RoutePlanHandler {
	return &RoutePlanHandler{
		routePlanUC: routePlanUC,
		logger:      logger,
	}
}

// List godoc
// @Summary Планы маршрутов
// @Description Новые первыми
// @Tags RoutePlans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RoutePlan}
// @Router /api/v1/route-plans [get]
func (h *RoutePlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.routePlanUC.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plans, &utils.Meta{
		Total: len(plans),
	})
}

// Active godoc
// @Summary Активный план
// @Description Активный план с маршрутами, остановками и трекпоинтами. 204, если активного плана нет.
// @Tags RoutePlans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.RoutePlan}
// @Success 204
// @Router /api/v1/route-plans/active [get]
func (h *RoutePlanHandler) Active(c *fiber.Ctx) error {
	plan, err := h.routePlanUC.Active(c.UserContext())
	if stderrors.Is(err, errors.ErrNoActivePlan) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Get godoc
// @Summary План по ID
// @Tags RoutePlans
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoutePlan}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/route-plans/{id} [get]
func (h *RoutePlanHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.routePlanUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Activate godoc
// @Summary Активация плана
// @Description Деактивирует все остальные планы в одной транзакции
// @Tags RoutePlans
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoutePlan}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/route-plans/{id}/activate [post]
func (h *RoutePlanHandler) Activate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.routePlanUC.Activate(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}
