package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// PublishAsync sends a content event in the background. Failures are logged.
func PublishAsync(events service.EventPublisher, log logger.Logger, eventType service.ContentEventType, entityType string, id uuid.UUID) {
	payload := service.ContentEventPayload{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   &id,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		if err := events.Publish(context.Background(), payload); err != nil {
			log.Error("Failed to publish content event", err,
				zap.String("event_type", string(eventType)),
				zap.String("entity_id", id.String()),
			)
		}
	}()
}
