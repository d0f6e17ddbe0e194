package messaging

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// PublishBestEffort publishes events and logs a failure instead of returning it
func PublishBestEffort(ctx context.Context, publisher EventPublisher, logger coreport.Logger, events ...entity.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		types := make([]string, 0, len(events))
		for _, e := range events {
			types = append(types, string(e.Type))
		}
		logger.Warn("Failed to publish domain events", map[string]any{
			"error":  err.Error(),
			"events": types,
		})
	}
}
