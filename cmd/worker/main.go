package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/adapters/event"
	"github.com/dimasadrian/portfolio/adapters/persistence"
	"github.com/dimasadrian/portfolio/adapters/search"
	"github.com/dimasadrian/portfolio/internal/application/service"
	articleUC "github.com/dimasadrian/portfolio/internal/application/usecase/article"
	orphanUC "github.com/dimasadrian/portfolio/internal/application/usecase/orphan"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
	"github.com/dimasadrian/portfolio/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.New(logger.Options{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}).With(zap.String("service", "portfolio-worker"))
	appLogger.Info("Starting Portfolio Worker...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer provider", err)
	}
	defer tp.Shutdown(context.Background())

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Search
	var index service.ArticleIndex = search.NoopIndex{}
	if cfg.Meili.Host != "" {
		index = search.NewMeiliArticleIndex(cfg, appLogger)
	} else {
		appLogger.Warn("Meilisearch not configured, article events are acknowledged without indexing")
	}

	// Repositories
	articleRepo := persistence.NewPostgresArticleRepo(dbPool, appLogger)
	orphanRepo := persistence.NewPostgresOrphanRepo(dbPool)

	// Worker Use Cases
	indexArticleUC := articleUC.NewIndexArticleUseCase(articleRepo, index, appLogger)
	recordOrphanUC := orphanUC.NewRecordOrphanUseCase(orphanRepo, appLogger)

	// Kafka Consumer
	consumer, err := event.NewConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = consumer.Run(ctx, func(ctx context.Context, payload service.ContentEventPayload) error {
		switch payload.EventType {
		case service.EventAssetOrphaned:
			return recordOrphanUC.Execute(ctx, payload)
		case service.EventArticleCreated, service.EventArticleUpdated, service.EventArticleDeleted:
			return indexArticleUC.Execute(ctx, payload)
		default:
			return nil
		}
	})
	if err != nil {
		appLogger.Error("Worker stopped", err)
	}
	appLogger.Info("Worker shut down")
}
