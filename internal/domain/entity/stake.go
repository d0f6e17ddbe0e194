package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stake is a single user's wager on one side of a proposition
type Stake struct {
	ID            string
	PropositionID string
	UserID        string
	Side          Side
	Amount        int64
	CreatedAt     time.Time
}

// NewStake validates and creates a stake
func NewStake(propositionID, userID string, side Side, amount int64, now time.Time) (*Stake, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if _, err := ParseSide(string(side)); err != nil {
		return nil, err
	}
	return &Stake{
		ID:            uuid.NewString(),
		PropositionID: propositionID,
		UserID:        userID,
		Side:          side,
		Amount:        amount,
		CreatedAt:     now,
	}, nil
}
