package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// KafkaProducerClient publishes every content event to one topic, keyed by
// entity id so events for the same record stay ordered.
type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = service.TopicContentEvents
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", topic))

	return &KafkaProducerClient{
		ContentEventsWriter: writer,
		logger:              log,
	}, nil
}

func encodeEvent(payload service.ContentEventPayload) (kafka.Message, error) {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	key := payload.EntityType
	if payload.EntityID != nil {
		key = payload.EntityID.String()
	}
	return kafka.Message{Key: []byte(key), Value: value}, nil
}

// DecodeEvent is the consumer side of encodeEvent.
func DecodeEvent(msg kafka.Message) (service.ContentEventPayload, error) {
	var payload service.ContentEventPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		return payload, fmt.Errorf("unmarshal event: %w", err)
	}
	return payload, nil
}

func (c *KafkaProducerClient) Publish(ctx context.Context, payload service.ContentEventPayload) error {
	msg, err := encodeEvent(payload)
	if err != nil {
		return err
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s: %w", payload.EventType, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka Producer")
}

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, service.ContentEventPayload) error { return nil }
