package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/adapters/persistence"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/pkg/auth"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func main() {
	log := logger.NewZapLogger("development")
	log.Info("adding owner into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("cannot load config", err)
	}

	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if ownerEmail == "" || ownerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD are required", nil)
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatal("cannot hash password", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("cannot connect DB", err)
	}
	defer pool.Close()

	ctx := context.Background()
	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, lower($2), $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
		RETURNING id
	`
	var userID uuid.UUID
	if err := pool.QueryRow(ctx, query, uuid.New(), ownerEmail, hash).Scan(&userID); err != nil {
		log.Fatal("cannot add user", err)
	}

	profileRepo := persistence.NewPostgresProfileRepo(pool, log)
	if err := profileRepo.CreateIfAbsent(ctx, profile.NewForEmail(userID, ownerEmail)); err != nil {
		log.Fatal("cannot create profile", err)
	}

	log.Info("added or updated owner successfully", zap.String("email", ownerEmail), zap.String("user_id", userID.String()))
}
