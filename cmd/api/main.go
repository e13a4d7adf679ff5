package main

// @title Shuttle HR API
// @version 1.0.0
// @description Бэкенд корпоративного транспорта: сотрудники и их адреса, остановки, зоны покрытия и планы маршрутов.
// @description
// @description Основные возможности:
// @description - Ближайшая остановка и k ближайших остановок для сотрудника
// @description - Активный план маршрутов с остановками и трекпоинтами
// @description - Зоны покрытия и назначения сотрудников
// @description - Загрузка CSV, GeoJSON и GPX для HR

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shuttle-hr/docs"
	"github.com/shuttle-hr/internal/config"
	httpDelivery "github.com/shuttle-hr/internal/delivery/http"
	"github.com/shuttle-hr/internal/delivery/http/handler"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/pkg/logger"
	"github.com/shuttle-hr/internal/pkg/report"
	"github.com/shuttle-hr/internal/repository/cache"
	"github.com/shuttle-hr/internal/repository/postgres"
	redisRepo "github.com/shuttle-hr/internal/repository/redis"
	"github.com/shuttle-hr/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.ValidateAPI(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "shuttle-hr-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := report.SetupSentry(cfg.Sentry.DSN, cfg.Server.Env, cfg.Sentry.Release); err != nil {
		log.Warn("Sentry disabled", zap.Error(err))
	}
	defer report.FlushSentry()

	log.Info("Starting Shuttle HR API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	busStopRepo := postgres.NewBusStopRepository(db)
	meshRepo := postgres.NewCoverageMeshRepository(db)
	planRepo := postgres.NewRoutePlanRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	active := usecase.NewActiveData(
		busStopRepo,
		planRepo,
		cacheRepo,
		cfg.Cache.ActiveStopsTTL,
		cfg.Cache.ActivePlanTTL,
		log,
	)
	notifier := usecase.NewRecomputeNotifier(streamRepo, log)

	mapUC := usecase.NewMapUseCase(
		userRepo,
		meshRepo,
		assignmentRepo,
		active,
		cfg.Proximity.DefaultLimit,
		cfg.Proximity.MaxLimit,
		log,
	)
	userUC := usecase.NewUserUseCase(userRepo, notifier, log)
	busStopUC := usecase.NewBusStopUseCase(busStopRepo, active, notifier, log)
	coverageUC := usecase.NewCoverageUseCase(meshRepo, notifier, log)
	routePlanUC := usecase.NewRoutePlanUseCase(planRepo, active, log)
	dataUC := usecase.NewDataManagementUseCase(
		userRepo,
		busStopRepo,
		meshRepo,
		planRepo,
		assignmentRepo,
		notifier,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)
	mapHandler := handler.NewMapHandler(mapUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	busStopHandler := handler.NewBusStopHandler(busStopUC, log)
	coverageHandler := handler.NewCoverageHandler(coverageUC, log)
	routePlanHandler := handler.NewRoutePlanHandler(routePlanUC, log)
	dataHandler := handler.NewDataManagementHandler(
		dataUC,
		busStopUC,
		coverageUC,
		routePlanUC,
		int64(cfg.Upload.MaxBytes),
		log,
	)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		healthHandler,
		mapHandler,
		userHandler,
		busStopHandler,
		coverageHandler,
		routePlanHandler,
		dataHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
