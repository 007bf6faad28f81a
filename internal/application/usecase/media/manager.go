package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

var tracer = otel.Tracer("media_manager")

// StagedFile is an image picked in a form but not uploaded yet.
type StagedFile struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

type ImageAction int

const (
	ImageKeep ImageAction = iota
	ImageReplace
	ImageClear
)

// ImageChange describes what a save does with the record's image.
type ImageChange struct {
	Action ImageAction
	File   *StagedFile
}

func KeepImage() ImageChange { return ImageChange{Action: ImageKeep} }

func ClearImage() ImageChange { return ImageChange{Action: ImageClear} }

func ReplaceImage(f StagedFile) ImageChange {
	return ImageChange{Action: ImageReplace, File: &f}
}

// Manager keeps stored objects in step with the image_url columns.
type Manager struct {
	storage service.ObjectStorage
	events  service.EventPublisher
	logger  logger.Logger
	now     func() time.Time
}

func NewManager(storage service.ObjectStorage, events service.EventPublisher, log logger.Logger) *Manager {
	return &Manager{storage: storage, events: events, logger: log, now: time.Now}
}

// WithClock replaces the time source used for object names.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Upload stores the file as "<prefix>-<millis>.<ext>" and returns its public URL.
func (m *Manager) Upload(ctx context.Context, bucket asset.Bucket, prefix string, file StagedFile) (string, error) {
	name := asset.ObjectName(prefix, file.Filename, m.now())

	ctx, span := tracer.Start(ctx, "Upload")
	defer span.End()
	span.SetAttributes(attribute.String("bucket", string(bucket)), attribute.String("object", name))

	url, err := m.storage.Upload(ctx, string(bucket), name, file.Reader, file.ContentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
		return "", apperror.NewInternal("failed to upload image", err)
	}

	m.logger.Info("Asset uploaded", zap.String("bucket", string(bucket)), zap.String("object", name))
	return url, nil
}

// Remove deletes the object behind url. A missing object or a url that names
// no object is logged and ignored.
func (m *Manager) Remove(ctx context.Context, bucket asset.Bucket, url string) error {
	name, err := asset.NameFromURL(url)
	if err != nil {
		m.logger.Warn("Cannot derive object name, skip removal", zap.String("bucket", string(bucket)), zap.String("url", url), zap.Error(err))
		return nil
	}

	ctx, span := tracer.Start(ctx, "Remove")
	defer span.End()
	span.SetAttributes(attribute.String("bucket", string(bucket)), attribute.String("object", name))

	err = m.storage.Delete(ctx, string(bucket), name)
	if errors.Is(err, asset.ErrObjectNotFound) {
		m.logger.Warn("Asset already gone", zap.String("bucket", string(bucket)), zap.String("object", name))
		return nil
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete %s/%s: %w", bucket, name, err)
	}
	return nil
}

// Discard is Remove where any failure only produces a warning.
func (m *Manager) Discard(ctx context.Context, bucket asset.Bucket, url string) {
	if err := m.Remove(ctx, bucket, url); err != nil {
		m.logger.Warn("Failed to remove asset", zap.String("bucket", string(bucket)), zap.String("url", url), zap.Error(err))
	}
}

// Apply runs the image half of a save: the old object goes first, then the
// new one is uploaded. It returns the URL to persist. An upload failure is
// returned before anything else happens.
func (m *Manager) Apply(ctx context.Context, bucket asset.Bucket, prefix string, currentURL *string, change ImageChange) (*string, error) {
	switch change.Action {
	case ImageKeep:
		return currentURL, nil
	case ImageClear:
		if currentURL != nil {
			m.Discard(ctx, bucket, *currentURL)
		}
		return nil, nil
	case ImageReplace:
		if change.File == nil || change.File.Reader == nil {
			return nil, apperror.NewInvalidInput("no image file staged", nil)
		}
		if currentURL != nil {
			m.Discard(ctx, bucket, *currentURL)
		}
		url, err := m.Upload(ctx, bucket, prefix, *change.File)
		if err != nil {
			return nil, err
		}
		return &url, nil
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown image action %d", change.Action), nil)
	}
}

// RecordOrphan reports an uploaded object whose record was not saved.
func (m *Manager) RecordOrphan(bucket asset.Bucket, url, entityType string, entityID *uuid.UUID, cause error) {
	reason := "persist failed"
	if cause != nil {
		reason = cause.Error()
	}
	m.logger.Warn("Orphaned asset left in storage",
		zap.String("bucket", string(bucket)),
		zap.String("url", url),
		zap.String("entity_type", entityType),
		zap.String("reason", reason),
	)

	payload := service.ContentEventPayload{
		EventType:  service.EventAssetOrphaned,
		EntityType: entityType,
		EntityID:   entityID,
		Bucket:     string(bucket),
		ObjectURL:  url,
		Reason:     reason,
		OccurredAt: m.now().UTC(),
	}
	go func() {
		if err := m.events.Publish(context.Background(), payload); err != nil {
			m.logger.Error("Failed to publish orphan event", err, zap.String("url", url))
		}
	}()
}
