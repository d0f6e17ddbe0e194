package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes domain events to a kafka topic as JSON, keyed by
// aggregate id so events for one proposition or user stay ordered
type KafkaPublisher struct {
	writer       messageWriter
	topic        string
	writeTimeout time.Duration
	logger       coreport.Logger
}

// NewKafkaPublisher creates a publisher for conf.Topic on conf.Brokers
func NewKafkaPublisher(conf config.KafkaConfig, logger coreport.Logger) (*KafkaPublisher, error) {
	if len(conf.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if conf.Topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(conf.Brokers...),
		Topic:                  conf.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           conf.WriteTimeout,
	}

	logger.Info("Kafka publisher configured", map[string]any{
		"brokers": conf.Brokers,
		"topic":   conf.Topic,
	})
	return newKafkaPublisher(w, conf.Topic, conf.WriteTimeout, logger), nil
}

func newKafkaPublisher(w messageWriter, topic string, writeTimeout time.Duration, logger coreport.Logger) *KafkaPublisher {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &KafkaPublisher{writer: w, topic: topic, writeTimeout: writeTimeout, logger: logger}
}

// Publish writes events in one batch
func (p *KafkaPublisher) Publish(ctx context.Context, events ...entity.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding event %s: %w", e.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.Type)},
				{Key: "event_id", Value: []byte(e.ID)},
			},
		})
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("writing %d events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.Debug("Published domain events", map[string]any{
		"topic": p.topic,
		"count": len(msgs),
	})
	return nil
}

// Close flushes pending writes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ messaging.EventPublisher = (*KafkaPublisher)(nil)
