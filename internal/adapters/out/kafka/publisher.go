// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const clientID = "warehouse"

var _ ports.EventPublisher = (*Publisher)(nil)

// MessageWriter is the part of a Kafka writer the publisher uses.
type MessageWriter interface {
	WriteMessage(ctx context.Context, msg kafka.Message) error
	Close() error
}

// Message is the JSON body of an order event.
type Message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	WorkerID   *string   `json:"worker_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	writer MessageWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewPublisher wraps writer. Use NewWriter for a traced writer bound to a topic.
func NewPublisher(writer MessageWriter, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
		now:    time.Now,
	}
}

// NewWriter builds a Kafka writer for topic whose messages carry the trace context in
// their headers.
func NewWriter(brokers []string, topic string, tp trace.TracerProvider) (MessageWriter, error) {
	base := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}
	w, err := otelkafka.NewWriter(base,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes([]attribute.KeyValue{
			semconv.MessagingDestinationNameKey.String(topic),
			attribute.String("messaging.kafka.client_id", clientID),
		}),
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Publish writes one message per event, keyed by order id so a consumer sees the events
// of an order in order. It keeps going after a failed write and returns all failures.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	var errs error
	for _, e := range events {
		msg, err := p.message(e)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err = p.writer.WriteMessage(ctx, msg); err != nil {
			errs = errors.Join(errs, fmt.Errorf("publish %s for order %s: %w", e.Type, e.OrderID, err))
			continue
		}
		p.logger.DebugContext(ctx, "event published", "type", e.Type, "order_id", e.OrderID.String())
	}
	return errs
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) message(e order.Event) (kafka.Message, error) {
	body := Message{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		Status:     e.Status.String(),
		OccurredAt: p.now().UTC(),
	}
	if e.WorkerID != nil {
		w := e.WorkerID.String()
		body.WorkerID = &w
	}

	value, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s for order %s: %w", e.Type, e.OrderID, err)
	}
	return kafka.Message{
		Key:   []byte(body.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(body.Type)},
		},
	}, nil
}
