package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const TopicContentEvents = "content.events"

type ContentEventType string

const (
	EventArticleCreated  ContentEventType = "article.created"
	EventArticleUpdated  ContentEventType = "article.updated"
	EventArticleDeleted  ContentEventType = "article.deleted"
	EventProjectCreated  ContentEventType = "project.created"
	EventProjectUpdated  ContentEventType = "project.updated"
	EventProjectDeleted  ContentEventType = "project.deleted"
	EventActivityCreated ContentEventType = "activity.created"
	EventActivityUpdated ContentEventType = "activity.updated"
	EventActivityDeleted ContentEventType = "activity.deleted"
	EventProfileUpdated  ContentEventType = "profile.updated"
	EventAssetOrphaned   ContentEventType = "asset.orphaned"
)

type ContentEventPayload struct {
	EventType  ContentEventType `json:"event_type"`
	EntityType string           `json:"entity_type"`
	EntityID   *uuid.UUID       `json:"entity_id,omitempty"`
	Bucket     string           `json:"bucket,omitempty"`
	ObjectURL  string           `json:"object_url,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, payload ContentEventPayload) error
}
