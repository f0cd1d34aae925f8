package service

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// NewEventPublisher drops every event when w is nil.
func NewEventPublisher(w *kafka.Writer) EventPublisher {
	if w == nil {
		return noopPublisher{}
	}
	return &KafkaPublisher{w: w}
}

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	w messageWriter
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

// publish runs after the row is committed, so a broker failure is logged and
// does not fail the request.
func publish(ctx context.Context, p EventPublisher, key string, payload any) {
	if err := p.Publish(ctx, key, payload); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event %s", key)
	}
}
