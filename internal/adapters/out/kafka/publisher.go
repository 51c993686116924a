// Package kafka publishes order change notifications to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"grocery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes order change events to one topic, keyed by order
// id so all events of one order land on the same partition in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher for the given broker and topic.
func NewOrderEventPublisher(host, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(host),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends one order change notification as a JSON message.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderEventPublisher discards events. Used when no broker is configured.
type NoopOrderEventPublisher struct{}

// NewNoopOrderEventPublisher creates a publisher that drops every event.
func NewNoopOrderEventPublisher() *NoopOrderEventPublisher {
	return &NoopOrderEventPublisher{}
}

// Publish discards the event.
func (p *NoopOrderEventPublisher) Publish(_ context.Context, _ ports.OrderChangedEvent) error {
	return nil
}

// Close is a no-op.
func (p *NoopOrderEventPublisher) Close() error {
	return nil
}
