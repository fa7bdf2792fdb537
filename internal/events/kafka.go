package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes transaction events to a Kafka topic, keyed by
// transaction id so redeliveries land on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
	topic  string
}

// NewKafkaPublisher creates a publisher for topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
	}

	logger.Info("kafka publisher created", "brokers", brokers, "topic", topic)
	return newKafkaPublisher(writer, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
		topic:  topic,
	}
}

// Publish encodes event as JSON and writes it synchronously
func (p *KafkaPublisher) Publish(ctx context.Context, event TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("transaction." + event.Status)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish transaction %s: %w", event.TransactionID, err)
	}

	p.logger.Debug("transaction event published",
		"topic", p.topic,
		"transaction_id", event.TransactionID,
	)
	return nil
}

// Close flushes pending writes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = NoopPublisher{}
)
