package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ArticleDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type ArticleIndex interface {
	Upsert(ctx context.Context, doc ArticleDocument) error
	Remove(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]ArticleDocument, error)
}
