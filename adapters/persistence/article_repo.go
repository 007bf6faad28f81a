package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const articleColumns = "id, title, slug, content, image_url, published_at, updated_at"

type postgresArticleRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresArticleRepo(db *pgxpool.Pool, logger logger.Logger) article.Repository {
	return &postgresArticleRepo{db: db, logger: logger}
}

func scanArticle(row pgx.Row) (*article.Article, error) {
	a := &article.Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.ImageURL, &a.PublishedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("article", "")
		}
		return nil, apperror.NewInternal("failed to scan article row", err)
	}
	return a, nil
}

func (r *postgresArticleRepo) Save(ctx context.Context, a *article.Article) error {
	query := `
		INSERT INTO articles (id, title, slug, content, image_url, published_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Slug, a.Content, a.ImageURL, a.PublishedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("article", "slug", a.Slug)
		}
		return apperror.NewInternal("failed to save article", err)
	}
	return nil
}

func (r *postgresArticleRepo) Update(ctx context.Context, a *article.Article) error {
	query := `
		UPDATE articles SET title = $2, slug = $3, content = $4, image_url = $5, updated_at = $6
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Slug, a.Content, a.ImageURL, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("article", "slug", a.Slug)
		}
		return apperror.NewInternal("failed to update article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("article", a.ID.String())
	}
	return nil
}

func (r *postgresArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("article", id.String())
	}
	return nil
}

func (r *postgresArticleRepo) FindByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	row := r.db.QueryRow(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
	a, err := scanArticle(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("article", id.String())
	}
	return a, err
}

func (r *postgresArticleRepo) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	row := r.db.QueryRow(ctx, "SELECT "+articleColumns+" FROM articles WHERE slug = $1", slug)
	a, err := scanArticle(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("article", slug)
	}
	return a, err
}

func (r *postgresArticleRepo) List(ctx context.Context, limit int) ([]*article.Article, error) {
	builder := psql.Select(articleColumns).
		From("articles").
		OrderBy("published_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list articles query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query articles", err)
	}
	defer rows.Close()

	articles := make([]*article.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating article rows", err)
	}
	return articles, nil
}

func (r *postgresArticleRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "articles")
}
