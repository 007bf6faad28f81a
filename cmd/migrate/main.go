package main

import (
	"errors"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of steps, 0 applies all")
	source := flag.String("path", "file://migrations", "migrations source URL")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	m, err := migrate.New(*source, cfg.DB.DSN)
	if err != nil {
		appLogger.Fatal("cannot create migrate instance", err)
	}
	defer m.Close()

	switch {
	case *steps != 0 && *direction == "down":
		err = m.Steps(-*steps)
	case *steps != 0:
		err = m.Steps(*steps)
	case *direction == "down":
		err = m.Down()
	case *direction == "up":
		err = m.Up()
	default:
		appLogger.Fatal("unknown direction", errors.New(*direction))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		appLogger.Fatal("migration failed", err, zap.String("direction", *direction))
	}

	version, dirty, _ := m.Version()
	appLogger.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
