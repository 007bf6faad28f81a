package main

import (
	"context"
	"time"

	"github.com/dimasadrian/portfolio/adapters/media_storage"
	"github.com/dimasadrian/portfolio/internal/application/usecase/backup"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}
	appLogger := logger.New(logger.Options{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	storage, err := media_storage.NewObjectStorage(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize object storage", err)
	}

	if _, err := backup.NewBackupUseCase(cfg.DB.DSN, backup.PgDump, storage, appLogger).Execute(ctx); err != nil {
		appLogger.Fatal("Backup failed", err)
	}
}
