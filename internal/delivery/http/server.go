package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/shuttle-hr/internal/config"
	"github.com/shuttle-hr/internal/delivery/http/handler"
	"github.com/shuttle-hr/internal/delivery/http/middleware"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/pkg/report"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// multipart overhead on top of the file itself
const bodyLimitSlack = 1 << 20

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	verifier *auth.Verifier

	// Handlers
	healthHandler    *handler.HealthHandler
	mapHandler       *handler.MapHandler
	userHandler      *handler.UserHandler
	busStopHandler   *handler.BusStopHandler
	coverageHandler  *handler.CoverageHandler
	routePlanHandler *handler.RoutePlanHandler
	dataHandler      *handler.DataManagementHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	verifier *auth.Verifier,
	healthHandler *handler.HealthHandler,
	mapHandler *handler.MapHandler,
	userHandler *handler.UserHandler,
	busStopHandler *handler.BusStopHandler,
	coverageHandler *handler.CoverageHandler,
	routePlanHandler *handler.RoutePlanHandler,
	dataHandler *handler.DataManagementHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Shuttle HR",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    cfg.Upload.MaxBytes + bodyLimitSlack,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		verifier:         verifier,
		healthHandler:    healthHandler,
		mapHandler:       mapHandler,
		userHandler:      userHandler,
		busStopHandler:   busStopHandler,
		coverageHandler:  coverageHandler,
		routePlanHandler: routePlanHandler,
		dataHandler:      dataHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)

	authed := api.Group("", middleware.RequireAuth(s.verifier, s.logger))
	admin := middleware.RequireAdmin()

	// Profile
	authed.Get("/me", s.userHandler.Me)
	authed.Get("/protected", s.userHandler.Protected)
	authed.Get("/privacy-consent", s.userHandler.Consent)
	authed.Patch("/privacy-consent", s.userHandler.UpdateConsent)
	authed.Post("/register", admin, s.userHandler.Register)

	// Map
	m := authed.Group("/map")
	m.Get("/employee/location", s.mapHandler.EmployeeLocation)
	m.Get("/stops/nearest", s.mapHandler.NearestStop)
	m.Get("/stops/nearby", s.mapHandler.NearbyStops)
	m.Get("/routes/employee", s.mapHandler.EmployeeRoutes)
	m.Get("/coverage/employee", s.mapHandler.EmployeeCoverage)
	m.Get("/assignment", s.mapHandler.Assignment)

	// Users (/me до /:id)
	users := authed.Group("/users")
	users.Get("/", s.userHandler.List)
	users.Get("/me", s.userHandler.Me)
	users.Patch("/me", s.userHandler.UpdateMe)
	users.Get("/:id", s.userHandler.Get)
	users.Patch("/:id", s.userHandler.Update)
	users.Delete("/:id", s.userHandler.Delete)

	// Bus stops
	stops := authed.Group("/bus-stops")
	stops.Get("/", s.busStopHandler.List)
	stops.Get("/:id", s.busStopHandler.Get)
	stops.Post("/", admin, s.busStopHandler.Create)
	stops.Put("/:id", admin, s.busStopHandler.Update)
	stops.Delete("/:id", admin, s.busStopHandler.Delete)

	// Coverage meshes
	authed.Get("/coverage-meshes", s.coverageHandler.List)
	authed.Post("/coverage-meshes", admin, s.coverageHandler.Create)

	// Route plans
	plans := authed.Group("/route-plans")
	plans.Get("/", s.routePlanHandler.List)
	plans.Get("/active", s.routePlanHandler.Active)
	plans.Get("/:id", s.routePlanHandler.Get)
	plans.Post("/:id/activate", admin, s.routePlanHandler.Activate)

	// Data management (HR / master admin)
	dm := authed.Group("/data-management", admin)
	dm.Get("/overview", s.dataHandler.Overview)
	dm.Post("/employees/upload-active", s.dataHandler.UploadActiveEmployees)
	dm.Post("/employees/upload-minimal", s.dataHandler.UploadMinimalEmployees)
	dm.Post("/employees/delete", s.dataHandler.DeleteEmployees)
	dm.Post("/bus-stops/upload", s.dataHandler.UploadBusStops)
	dm.Post("/bus-stops/delete", s.dataHandler.DeleteBusStops)
	dm.Post("/coverage-mesh/upload", s.dataHandler.UploadCoverageMesh)
	dm.Post("/coverage-mesh/delete", s.dataHandler.DeleteCoverageMesh)
	dm.Post("/routes/upload", s.dataHandler.UploadRoute)
	dm.Post("/routes/delete", s.dataHandler.DeleteRoute)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := errors.ErrInternalServer

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			appErr = errors.New(codeForStatus(fe.Code), fe.Message, fe.Code)
		}

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
			report.ReportError(err)
		}

		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"error": appErr,
		})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "INVALID_REQUEST"
	default:
		if status >= fiber.StatusInternalServerError {
			return "INTERNAL_SERVER_ERROR"
		}
		return "HTTP_ERROR"
	}
}
