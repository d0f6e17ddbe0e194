package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published after a successful commit
type EventType string

// Event types
const (
	EventStakePlaced         EventType = "stake.placed"
	EventPropositionResolved EventType = "proposition.resolved"
	EventGrantClaimed        EventType = "daily_grant.claimed"
	EventLeaderboardRebuilt  EventType = "leaderboard.rebuilt"
)

// DomainEvent is a fact about a committed change
type DomainEvent struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	UserID      string         `json:"user_id,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// NewDomainEvent stamps a new event
func NewDomainEvent(eventType EventType, aggregateID, userID string, payload map[string]any, now time.Time) DomainEvent {
	return DomainEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		UserID:      userID,
		Payload:     payload,
		OccurredAt:  now,
	}
}
