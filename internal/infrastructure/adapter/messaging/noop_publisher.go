package messaging

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
)

// LogPublisher logs events at debug level instead of sending them anywhere.
// It is used when kafka is disabled.
type LogPublisher struct {
	logger coreport.Logger
}

// NewLogPublisher creates a publisher that only logs
func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...entity.DomainEvent) error {
	for _, e := range events {
		p.logger.Debug("Domain event", map[string]any{
			"event_id":     e.ID,
			"event_type":   string(e.Type),
			"aggregate_id": e.AggregateID,
			"user_id":      e.UserID,
		})
	}
	return nil
}

func (p *LogPublisher) Close() error { return nil }

var _ messaging.EventPublisher = (*LogPublisher)(nil)
