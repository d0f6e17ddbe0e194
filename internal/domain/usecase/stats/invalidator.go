package stats

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/domain/port/messaging"
)

// CacheInvalidator is an EventPublisher that retires the cached statistics of
// every user an event touches before passing the events on. next may be nil.
type CacheInvalidator struct {
	next  messaging.EventPublisher
	stats *StatsUseCase
}

// NewCacheInvalidator wraps next
func NewCacheInvalidator(next messaging.EventPublisher, stats *StatsUseCase) *CacheInvalidator {
	return &CacheInvalidator{next: next, stats: stats}
}

// Publish invalidates, then forwards
func (c *CacheInvalidator) Publish(ctx context.Context, events ...entity.DomainEvent) error {
	c.stats.Invalidate(ctx, affectedUsers(events)...)
	if c.next == nil {
		return nil
	}
	return c.next.Publish(ctx, events...)
}

// Close closes the wrapped publisher
func (c *CacheInvalidator) Close() error {
	if c.next == nil {
		return nil
	}
	return c.next.Close()
}

// affectedUsers lists the users whose stake history an event changed
func affectedUsers(events []entity.DomainEvent) []string {
	var users []string
	for _, e := range events {
		switch e.Type {
		case entity.EventStakePlaced:
			users = append(users, e.UserID)
		case entity.EventPropositionResolved:
			if stakers, ok := e.Payload["stakers"].([]string); ok {
				users = append(users, stakers...)
			}
		}
	}
	return users
}

var _ messaging.EventPublisher = (*CacheInvalidator)(nil)
