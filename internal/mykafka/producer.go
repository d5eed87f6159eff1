package mykafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/tprstore/storefront/internal/logging"
)

const (
	TopicProductEvents = "product_events"
	TopicCartEvents    = "cart_events"
	TopicOrderEvents   = "order_events"
	TopicReviewEvents  = "review_events"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(address []string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

// TryPublish is the fire-and-forget path used after commits: events are
// best-effort, a broker failure never fails the request. Safe on a nil
// producer, which is how the event stream is disabled.
func (p *Producer) TryPublish(ctx context.Context, topic, key string, event interface{}) {
	if p == nil || p.writer == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", topic, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
