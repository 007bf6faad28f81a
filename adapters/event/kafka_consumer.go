package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// HandlerFunc processes one decoded event. A failing handler is retried;
// once the attempts are used up the event is logged as dropped and committed.
type HandlerFunc func(ctx context.Context, payload service.ContentEventPayload) error

const (
	defaultMaxAttempts  = 5
	defaultRetryBackoff = time.Second
)

type Consumer struct {
	reader      *kafka.Reader
	logger      logger.Logger
	maxAttempts int
	backoff     time.Duration
}

func NewConsumer(cfg config.Config, log logger.Logger) (*Consumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = service.TopicContentEvents
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &Consumer{
		reader:      reader,
		logger:      log.With(zap.String("topic", topic)),
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
	}, nil
}

// Run blocks until ctx is cancelled. Undecodable messages are committed and
// skipped.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) error {
	c.logger.Info("Worker listening")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		payload, err := DecodeEvent(msg)
		if err != nil {
			c.logger.Error("Skipping malformed event", err, zap.String("key", string(msg.Key)))
			c.commit(ctx, msg)
			continue
		}

		log := c.logger.With(zap.String("event_type", string(payload.EventType)), zap.String("key", string(msg.Key)))
		log.Info("Processing event")

		if err := c.dispatch(ctx, log, handle, payload); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error("Dropping event after retries", err, droppedFields(payload, c.maxAttempts)...)
		}
		c.commit(ctx, msg)
	}
}

// dispatch runs handle up to maxAttempts times, waiting backoff*attempt
// between tries. It gives up early when ctx ends.
func (c *Consumer) dispatch(ctx context.Context, log logger.Logger, handle HandlerFunc, payload service.ContentEventPayload) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err = handle(ctx, payload); err == nil {
			return nil
		}
		log.Warn("Event handler failed", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == c.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func droppedFields(p service.ContentEventPayload, attempts int) []zap.Field {
	fields := []zap.Field{
		zap.Int("attempts", attempts),
		zap.String("entity_type", p.EntityType),
		zap.Time("occurred_at", p.OccurredAt),
	}
	if p.EntityID != nil {
		fields = append(fields, zap.String("entity_id", p.EntityID.String()))
	}
	if p.ObjectURL != "" {
		fields = append(fields, zap.String("object_url", p.ObjectURL))
	}
	return fields
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
