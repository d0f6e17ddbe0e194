package messaging

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// EventPublisher delivers domain events to interested consumers.
// Publishing happens after the originating transaction commits, so a
// failure here never undoes a balance change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...entity.DomainEvent) error
	Close() error
}
