package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/logger"
	"github.com/mensunw/people-bets/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs     []kafka.Message
	err      error
	deadline bool
	closed   bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "people-bets.events", time.Second, logger.NewNoopLogger())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e1 := entity.NewDomainEvent(entity.EventStakePlaced, "prop-1", "user-1", map[string]any{"amount": 100}, now)
	e2 := entity.NewDomainEvent(entity.EventPropositionResolved, "prop-1", "", nil, now)

	require.NoError(t, p.Publish(context.Background(), e1, e2))
	require.Len(t, w.msgs, 2)
	assert.True(t, w.deadline)

	msg := w.msgs[0]
	assert.Equal(t, "prop-1", string(msg.Key))
	assert.Equal(t, now, msg.Time)
	assert.Equal(t, kafka.Header{Key: "event_type", Value: []byte("stake.placed")}, msg.Headers[0])

	var decoded entity.DomainEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, e1.ID, decoded.ID)
	assert.Equal(t, entity.EventStakePlaced, decoded.Type)
	assert.Equal(t, "user-1", decoded.UserID)
}

func TestKafkaPublisher_PublishNothing(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "t", 0, logger.NewNoopLogger())
	require.NoError(t, p.Publish(context.Background()))
	assert.Empty(t, w.msgs)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, "t", time.Second, logger.NewNoopLogger())

	err := p.Publish(context.Background(), entity.NewDomainEvent(entity.EventGrantClaimed, "u", "u", nil, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(config.KafkaConfig{Topic: "t"}, logger.NewNoopLogger())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}}, logger.NewNoopLogger())
	assert.Error(t, err)

	p, err := NewKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(logger.NewNoopLogger())
	assert.NoError(t, p.Publish(context.Background(), entity.NewDomainEvent(entity.EventLeaderboardRebuilt, "lb", "", nil, time.Now())))
	assert.NoError(t, p.Close())
}
