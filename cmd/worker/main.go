package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shuttle-hr/internal/config"
	"github.com/shuttle-hr/internal/pkg/logger"
	"github.com/shuttle-hr/internal/pkg/report"
	"github.com/shuttle-hr/internal/repository/cache"
	"github.com/shuttle-hr/internal/repository/postgres"
	redisRepo "github.com/shuttle-hr/internal/repository/redis"
	"github.com/shuttle-hr/internal/usecase"
	"github.com/shuttle-hr/internal/worker"
	"github.com/shuttle-hr/internal/worker/assignment"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "shuttle-hr-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := report.SetupSentry(cfg.Sentry.DSN, cfg.Server.Env, cfg.Sentry.Release); err != nil {
		log.Warn("Sentry disabled", zap.Error(err))
	}
	defer report.FlushSentry()

	log.Info("Starting assignment worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch_size", cfg.Worker.MaxBatchSize),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	busStopRepo := postgres.NewBusStopRepository(db)
	meshRepo := postgres.NewCoverageMeshRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	// 6. Initialize use cases
	assignmentUC := usecase.NewAssignmentUseCase(
		userRepo,
		busStopRepo,
		meshRepo,
		assignmentRepo,
		log,
	)

	// 7. Create worker manager and register workers
	manager := worker.NewManager(log)
	manager.Register(assignment.NewWorker(
		streamRepo,
		assignmentUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxBatchSize,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if err := manager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
