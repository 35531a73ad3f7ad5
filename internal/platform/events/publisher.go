package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes payroll events to a Kafka topic as JSON messages
// keyed by organization ID, so one organization's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish serializes the event and writes it to the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, event portssvc.PayrollEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payroll event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrganizationID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write payroll event to kafka: %w", err)
	}

	p.logger.Debug("Payroll event published",
		slog.String("type", event.Type),
		slog.String("period_id", event.PeriodID))
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher logs events instead of publishing them. Used when no brokers
// are configured, and in tests.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the event at debug level and drops it.
func (p *NoopPublisher) Publish(_ context.Context, event portssvc.PayrollEvent) error {
	p.logger.Debug("Payroll event dropped (no brokers configured)",
		slog.String("type", event.Type),
		slog.String("period_id", event.PeriodID))
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error { return nil }

// Compile-time interface checks.
var (
	_ portssvc.NotificationPublisher = (*KafkaPublisher)(nil)
	_ portssvc.NotificationPublisher = (*NoopPublisher)(nil)
)
