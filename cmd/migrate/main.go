package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shuttle-hr/internal/config"
	"github.com/shuttle-hr/internal/pkg/logger"
	"github.com/shuttle-hr/internal/repository/postgres"
	"go.uber.org/zap"
)

// migrate up | down
func main() {
	dir := flag.String("dir", "migrations", "directory with *.up.sql / *.down.sql files")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, "shuttle-hr-migrate")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		applied, err := db.Migrate(ctx, *dir)
		if err != nil {
			log.Error("Migration failed", zap.Strings("applied", applied), zap.Error(err))
			os.Exit(1)
		}
		log.Info("Migrations up to date", zap.Int("applied", len(applied)))
	case "down":
		version, err := db.Rollback(ctx, *dir)
		if err != nil {
			log.Error("Rollback failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("Rolled back", zap.String("version", version))
	default:
		log.Error("Unknown command, expected up or down", zap.String("command", command))
		os.Exit(2)
	}
}
