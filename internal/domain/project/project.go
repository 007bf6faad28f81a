package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	ImageURL    *string   `json:"image_url"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}

var ErrTitleRequired = errors.New("title is required")

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// List returns projects newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Project, error)
	Count(ctx context.Context) (int, error)
}
