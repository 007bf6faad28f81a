package article

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"image_url"`
	PublishedAt time.Time  `json:"published_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidSlug   = errors.New("slug only allows lowercase letters, digits, underscore and hyphen")
	slugRegex        = regexp.MustCompile(`^[a-z0-9_-]+$`)
	slugStrip        = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
)

// Slugify lower-cases and trims the title, drops anything that is not a word
// character, whitespace or hyphen, then turns whitespace runs into hyphens.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "-")
}

// ResolveSlug returns the given slug when it is locked and non-empty,
// otherwise the slug derived from title.
func ResolveSlug(title, slug string, locked bool) string {
	if locked && strings.TrimSpace(slug) != "" {
		return strings.TrimSpace(slug)
	}
	return Slugify(title)
}

func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrTitleRequired
	}
	if !slugRegex.MatchString(a.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Article, error)
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	// List returns articles newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Article, error)
	Count(ctx context.Context) (int, error)
}
