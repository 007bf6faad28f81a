package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func scanProfile(row pgx.Row, identifier string) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(&p.ID, &p.FullName, &p.Bio, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", identifier)
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT id, full_name, bio, avatar_url, created_at
		FROM profiles
		WHERE id = $1
	`
	return scanProfile(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *postgresProfileRepo) FindOwner(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, full_name, bio, avatar_url, created_at
		FROM profiles
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`
	return scanProfile(r.db.QueryRow(ctx, query), "owner")
}

func (r *postgresProfileRepo) CreateIfAbsent(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, bio, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, p.ID, p.FullName, p.Bio, p.AvatarURL); err != nil {
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET full_name = $2, bio = $3, avatar_url = $4
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, p.FullName, p.Bio, p.AvatarURL)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	return nil
}
