package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/delivery/http/middleware"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/pkg/validator"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// DataManagementHandler - панель HR: обзор и загрузка файлов
type DataManagementHandler struct {
	dataUC      *usecase.DataManagementUseCase
	busStopUC   *usecase.BusStopUseCase
	coverageUC  *usecase.CoverageUseCase
	routePlanUC *usecase.RoutePlanUseCase
	maxUpload   int64
	logger      *zap.Logger
}

// NewDataManagementHandler - создание нового DataManagementHandler
func NewDataManagementHandler(
	dataUC *usecase.DataManagementUseCase,
	busStopUC *usecase.BusStopUseCase,
	coverageUC *usecase.CoverageUseCase,
	routePlanUC *usecase.RoutePlanUseCase,
	maxUpload int64,
	logger *zap.Logger,
) *DataManagementHandler {
	return &DataManagementHandler{
		dataUC:      dataUC,
		busStopUC:   busStopUC,
		coverageUC:  coverageUC,
		routePlanUC: routePlanUC,
		maxUpload:   maxUpload,
		logger:      logger,
	}
}

// parseOptionalBody - пустое тело допустимо (например, удалить все зоны)
func parseOptionalBody(c *fiber.Ctx, out interface{}) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return nil
}

// Overview godoc
// @Summary Обзор данных
// @Description Все пользователи (поиск, сортировка employee_id|name|company, страницы по 10 или show_all), статистика остановок, зоны покрытия, планы и сводка назначений
// @Tags DataManagement
// @Produce json
// @Security BearerAuth
// @Param q query string false "Поиск"
// @Param sort query string false "employee_id, name или company" default(employee_id)
// @Param dir query string false "asc или desc" default(asc)
// @Param show_all query bool false "Без пагинации"
// @Param page query int false "Страница" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.OverviewResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/data-management/overview [get]
func (h *DataManagementHandler) Overview(c *fiber.Ctx) error {
	var req dto.OverviewRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}

	result, err := h.dataUC.Overview(c.UserContext(), middleware.Role(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UploadActiveEmployees godoc
// @Summary Загрузка активных сотрудников
// @Description CSV в ISO-8859-1 с колонкой "Numero de personal". Сотрудники из файла становятся активными, остальные неактивными.
// @Tags DataManagement
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param active_employees_file formData file false "CSV файл"
// @Param file formData file false "CSV файл (альтернативное поле)"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/employees/upload-active [post]
func (h *DataManagementHandler) UploadActiveEmployees(c *fiber.Ctx) error {
	content, err := readUpload(c, fieldActiveEmployees, h.maxUpload)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dataUC.UploadActiveEmployees(c.UserContext(), bytes.NewReader(content))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UploadMinimalEmployees godoc
// @Summary Загрузка новых сотрудников
// @Description CSV без заголовка: employee_id, company, utilization, shift, lat, lon. Существующие employee_id пропускаются.
// @Tags DataManagement
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param csv_file formData file false "CSV файл"
// @Param file formData file false "CSV файл (альтернативное поле)"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/employees/upload-minimal [post]
func (h *DataManagementHandler) UploadMinimalEmployees(c *fiber.Ctx) error {
	content, err := readUpload(c, fieldMinimalEmployees, h.maxUpload)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dataUC.UploadMinimalEmployees(c.UserContext(), bytes.NewReader(content))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteEmployees godoc
// @Summary Удаление сотрудников
// @Tags DataManagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteEmployeesRequest true "ID сотрудников"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/employees/delete [post]
func (h *DataManagementHandler) DeleteEmployees(c *fiber.Ctx) error {
	var req dto.DeleteEmployeesRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dataUC.DeleteEmployees(c.UserContext(), req.SelectedIDs)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UploadBusStops godoc
// @Summary Загрузка остановок
// @Description CSV с колонками stop_id, name, latitude, longitude и необязательной source. Полностью заменяет текущий набор.
// @Tags DataManagement
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bus_stop_file formData file false "CSV файл"
// @Param file formData file false "CSV файл (альтернативное поле)"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/bus-stops/upload [post]
func (h *DataManagementHandler) UploadBusStops(c *fiber.Ctx) error {
	content, err := readUpload(c, fieldBusStops, h.maxUpload)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.busStopUC.Upload(c.UserContext(), bytes.NewReader(content))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteBusStops godoc
// @Summary Удаление всех остановок
// @Tags DataManagement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteResult}
// @Router /api/v1/data-management/bus-stops/delete [post]
func (h *DataManagementHandler) DeleteBusStops(c *fiber.Ctx) error {
	result, err := h.busStopUC.DeleteAll(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UploadCoverageMesh godoc
// @Summary Загрузка зоны покрытия
// @Description GeoJSON Polygon, FeatureCollection или CSV с колонками latitude, longitude
// @Tags DataManagement
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverage_mesh_file formData file false "GeoJSON или CSV"
// @Param file formData file false "GeoJSON или CSV (альтернативное поле)"
// @Param name formData string false "Название" default(Coverage Mesh)
// @Param version formData string false "Версия" default(1.0)
// @Success 200 {object} utils.SuccessResponse{data=dto.CoverageUploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/coverage-mesh/upload [post]
func (h *DataManagementHandler) UploadCoverageMesh(c *fiber.Ctx) error {
	var req dto.CoverageUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid form"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	content, err := readUpload(c, fieldCoverageMesh, h.maxUpload)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.coverageUC.Upload(c.UserContext(), content, req.Name, req.Version)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteCoverageMesh godoc
// @Summary Удаление зоны покрытия
// @Description Без mesh_id удаляются все зоны
// @Tags DataManagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteCoverageMeshRequest false "ID зоны"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteResult}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/data-management/coverage-mesh/delete [post]
func (h *DataManagementHandler) DeleteCoverageMesh(c *fiber.Ctx) error {
	var req dto.DeleteCoverageMeshRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.coverageUC.Delete(c.UserContext(), req.MeshID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UploadRoute godoc
// @Summary Загрузка маршрута
// @Description GPX: trkpt становятся трекпоинтами, rtept или wpt остановками. План ищется по имени или создаётся.
// @Tags DataManagement
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param route_file formData file false "GPX файл"
// @Param file formData file false "GPX файл (альтернативное поле)"
// @Param name formData string true "Название маршрута"
// @Param route_type formData string false "FIXED_8HRS, MIXED_8HRS или MIXED_12HRS" default(FIXED_8HRS)
// @Param is_active formData bool false "Активировать план"
// @Param plan_name formData string false "Название плана"
// @Param bus_supplier formData string false "Перевозчик"
// @Param color formData string false "Цвет" default(#2E86DE)
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteUploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/data-management/routes/upload [post]
func (h *DataManagementHandler) UploadRoute(c *fiber.Ctx) error {
	var req dto.RouteUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid form"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	content, err := readUpload(c, fieldRoute, h.maxUpload)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routePlanUC.Upload(c.UserContext(), content, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteRoute godoc
// @Summary Удаление маршрута и/или плана
// @Tags DataManagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteRouteRequest true "route_id и/или plan_id"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/data-management/routes/delete [post]
func (h *DataManagementHandler) DeleteRoute(c *fiber.Ctx) error {
	var req dto.DeleteRouteRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routePlanUC.Delete(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
