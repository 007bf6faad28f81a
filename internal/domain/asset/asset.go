package asset

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Bucket string

const (
	BucketArticles   Bucket = "articles"
	BucketProjects   Bucket = "projects"
	BucketActivities Bucket = "activities"
	BucketAvatars    Bucket = "avatars"
	BucketBackups    Bucket = "backups"
)

const (
	PrefixArticle  = "article"
	PrefixProject  = "project"
	PrefixActivity = "activity"
)

// AvatarPrefix keeps each user's avatars apart inside the avatars bucket.
func AvatarPrefix(userID uuid.UUID) string {
	return "avatar-" + userID.String()
}

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidURL     = errors.New("cannot derive object name from url")
)

// ObjectName builds "<prefix>-<unix millis>.<ext>" from the uploaded file name.
// The extension is lower-cased and left out when the file has none.
func ObjectName(prefix, filename string, now time.Time) string {
	name := fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// NameFromURL returns the trailing path segment of a public object URL.
func NameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	p := strings.TrimRight(u.Path, "/")
	idx := strings.LastIndex(p, "/")
	name := p[idx+1:]
	if name == "" {
		return "", ErrInvalidURL
	}
	return name, nil
}

// OrphanedAsset is an uploaded object whose record never got persisted.
type OrphanedAsset struct {
	ID         uuid.UUID  `json:"id"`
	Bucket     Bucket     `json:"bucket"`
	ObjectURL  string     `json:"object_url"`
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id"`
	Reason     string     `json:"reason"`
	RecordedAt time.Time  `json:"recorded_at"`
}

type OrphanRepository interface {
	Save(ctx context.Context, o *OrphanedAsset) error
	List(ctx context.Context, limit int) ([]*OrphanedAsset, error)
}
