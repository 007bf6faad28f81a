package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/adapters/event"
	httpAdapter "github.com/dimasadrian/portfolio/adapters/http"
	"github.com/dimasadrian/portfolio/adapters/media_storage"
	"github.com/dimasadrian/portfolio/adapters/persistence"
	"github.com/dimasadrian/portfolio/adapters/search"
	"github.com/dimasadrian/portfolio/internal/application/service"
	activityUC "github.com/dimasadrian/portfolio/internal/application/usecase/activity"
	articleUC "github.com/dimasadrian/portfolio/internal/application/usecase/article"
	authUC "github.com/dimasadrian/portfolio/internal/application/usecase/auth"
	homeUC "github.com/dimasadrian/portfolio/internal/application/usecase/home"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	orphanUC "github.com/dimasadrian/portfolio/internal/application/usecase/orphan"
	profileUC "github.com/dimasadrian/portfolio/internal/application/usecase/profile"
	projectUC "github.com/dimasadrian/portfolio/internal/application/usecase/project"
	statsUC "github.com/dimasadrian/portfolio/internal/application/usecase/stats"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/auth"
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
	}).With(zap.String("service", "portfolio-api"))
	appLogger.Info("Start Portfolio API Server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Redis (optional)
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = persistence.NewRedisClient(context.Background(), cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
	} else {
		appLogger.Warn("Redis not configured, login rate limiting and logout revocation are disabled")
	}

	// Kafka (optional)
	var events service.EventPublisher = event.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		events = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, content events are dropped")
	}

	// Object storage
	storage, err := media_storage.NewObjectStorage(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize object storage", err)
	}

	// Search (optional)
	var index service.ArticleIndex = search.NoopIndex{}
	if cfg.Meili.Host != "" {
		index = search.NewMeiliArticleIndex(cfg, appLogger)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	articleRepo := persistence.NewPostgresArticleRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	activityRepo := persistence.NewPostgresActivityRepo(dbPool, appLogger)
	orphanRepo := persistence.NewPostgresOrphanRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	sessions := persistence.NewRedisSessionStore(redisClient)
	mediaManager := media.NewManager(storage, events, appLogger)

	// Use Cases
	rssUseCase := articleUC.NewRSSUseCase(articleRepo, articleUC.FeedInfo{
		Title:       "Portfolio",
		Description: "Latest articles",
		Author:      "Portfolio owner",
		SiteURL:     cfg.App.PublicBaseURL,
	}, appLogger)

	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			authUC.NewLoginUseCase(userRepo, profileRepo, sessions, jwtSvc, authUC.LoginLimits{
				MaxAttempts: cfg.Auth.LoginMaxAttempts,
				Window:      cfg.Auth.LoginWindow,
			}, appLogger),
			authUC.NewLogoutUseCase(sessions, appLogger),
			authUC.NewSessionUseCase(userRepo, profileRepo),
			appLogger,
		),
		Profile: httpAdapter.NewProfileHandler(
			profileUC.NewProfileUseCase(profileRepo, mediaManager, events, appLogger),
			appLogger,
		),
		Article: httpAdapter.NewArticleHandler(
			articleUC.NewCreateArticleUseCase(articleRepo, mediaManager, events, appLogger),
			articleUC.NewUpdateArticleUseCase(articleRepo, mediaManager, events, appLogger),
			articleUC.NewDeleteArticleUseCase(articleRepo, mediaManager, events, appLogger),
			articleUC.NewGetArticleUseCase(articleRepo),
			articleUC.NewGetArticleBySlugUseCase(articleRepo),
			articleUC.NewListArticlesUseCase(articleRepo),
			rssUseCase,
			appLogger,
		),
		Project: httpAdapter.NewProjectHandler(
			projectUC.NewCreateProjectUseCase(projectRepo, mediaManager, events, appLogger),
			projectUC.NewUpdateProjectUseCase(projectRepo, mediaManager, events, appLogger),
			projectUC.NewDeleteProjectUseCase(projectRepo, mediaManager, events, appLogger),
			projectUC.NewGetProjectUseCase(projectRepo),
			projectUC.NewListProjectsUseCase(projectRepo),
		),
		Activity: httpAdapter.NewActivityHandler(
			activityUC.NewCreateActivityUseCase(activityRepo, mediaManager, events, appLogger),
			activityUC.NewUpdateActivityUseCase(activityRepo, mediaManager, events, appLogger),
			activityUC.NewDeleteActivityUseCase(activityRepo, mediaManager, events, appLogger),
			activityUC.NewGetActivityUseCase(activityRepo),
			activityUC.NewListActivitiesUseCase(activityRepo),
			activityUC.NewExportActivitiesUseCase(activityRepo, appLogger),
		),
		Dashboard: httpAdapter.NewDashboardHandler(
			statsUC.NewStatsUseCase(articleRepo, projectRepo, activityRepo),
			orphanUC.NewListOrphansUseCase(orphanRepo),
		),
		Public: httpAdapter.NewPublicHandler(
			homeUC.NewHomeUseCase(articleRepo, projectRepo, activityRepo, profileRepo, appLogger),
			rssUseCase,
			articleUC.NewSearchArticlesUseCase(index),
			appLogger,
		),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		JWT:            jwtSvc,
		Sessions:       sessions,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Logger:         appLogger,
	}, handlers)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
