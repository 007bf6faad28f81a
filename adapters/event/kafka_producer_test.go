package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func TestEncodeEventKeysByEntity(t *testing.T) {
	id := uuid.New()
	msg, err := encodeEvent(service.ContentEventPayload{
		EventType:  service.EventArticleCreated,
		EntityType: "article",
		EntityID:   &id,
	})
	require.NoError(t, err)
	assert.Equal(t, id.String(), string(msg.Key))

	decoded, err := DecodeEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, service.EventArticleCreated, decoded.EventType)
	assert.Equal(t, id, *decoded.EntityID)
	assert.WithinDuration(t, time.Now(), decoded.OccurredAt, time.Minute)
}

func TestEncodeEventWithoutEntityFallsBackToType(t *testing.T) {
	msg, err := encodeEvent(service.ContentEventPayload{EventType: service.EventAssetOrphaned, EntityType: "profile"})
	require.NoError(t, err)
	assert.Equal(t, "profile", string(msg.Key))
}

func TestNewKafkaProducerClientRequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), service.ContentEventPayload{}))
}
