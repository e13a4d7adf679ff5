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

// CoverageHandler - зоны покрытия
type CoverageHandler struct {
	coverageUC *usecase.CoverageUseCase
	logger     *zap.Logger
}

// NewCoverageHandler - создание нового CoverageHandler
func NewCoverageHandler(coverageUC *usecase.CoverageUseCase, logger *zap.Logger) *CoverageHandler {
	return &CoverageHandler{
		coverageUC: coverageUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Зоны покрытия
// @Description Все зоны с вершинами по возрастанию order
// @Tags Coverage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CoverageMesh}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/coverage-meshes [get]
func (h *CoverageHandler) List(c *fiber.Ctx) error {
	meshes, err := h.coverageUC.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, meshes, &utils.Meta{
		Total: len(meshes),
	})
}

// Create godoc
// @Summary Создание зоны покрытия
// @Description Вершины без order нумеруются по позиции в массиве
// @Tags Coverage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CoverageMeshRequest true "Зона покрытия"
// @Success 201 {object} utils.SuccessResponse{data=domain.CoverageMesh}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/coverage-meshes [post]
func (h *CoverageHandler) Create(c *fiber.Ctx) error {
	var req dto.CoverageMeshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	mesh, err := h.coverageUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, mesh)
}
