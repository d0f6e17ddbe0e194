package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	errs "github.com/mensunw/people-bets/internal/domain/error"
)

// LedgerKind classifies a balance movement
type LedgerKind string

// Ledger kinds
const (
	LedgerSignupBonus LedgerKind = "signup_bonus"
	LedgerStake       LedgerKind = "stake"
	LedgerPayout      LedgerKind = "payout"
	LedgerDailyGrant  LedgerKind = "daily_grant"
)

// IsCredit reports whether entries of this kind add to the balance
func (k LedgerKind) IsCredit() bool {
	return k != LedgerStake
}

// IsValid checks k against the known kinds
func (k LedgerKind) IsValid() bool {
	switch k {
	case LedgerSignupBonus, LedgerStake, LedgerPayout, LedgerDailyGrant:
		return true
	}
	return false
}

// LedgerEntry is an immutable record of one balance change.
// Reference is unique across the ledger and doubles as an idempotency key.
type LedgerEntry struct {
	ID            string
	UserID        string
	Kind          LedgerKind
	Amount        int64 // signed: negative for debits
	Reference     string
	ResultBalance int64
	CreatedAt     time.Time
}

// NewLedgerEntry creates an entry; amount is the unsigned magnitude
func NewLedgerEntry(userID string, kind LedgerKind, amount int64, reference string, resultBalance int64, now time.Time) (*LedgerEntry, error) {
	if !kind.IsValid() {
		return nil, errs.NewValidationError("kind", fmt.Sprintf("unknown ledger kind %q", kind))
	}
	if amount < 0 {
		return nil, errs.NewValidationError("amount", "ledger amount must be unsigned")
	}
	if reference == "" {
		return nil, errs.NewValidationError("reference", "cannot be empty")
	}

	signed := amount
	if !kind.IsCredit() {
		signed = -amount
	}

	return &LedgerEntry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Kind:          kind,
		Amount:        signed,
		Reference:     reference,
		ResultBalance: resultBalance,
		CreatedAt:     now,
	}, nil
}

// StakeReference keys the debit for a stake
func StakeReference(stakeID string) string {
	return "stake:" + stakeID
}

// PayoutReference keys the credit for a winning stake
func PayoutReference(stakeID string) string {
	return "payout:" + stakeID
}

// SignupReference keys the initial balance grant
func SignupReference(userID string) string {
	return "signup:" + userID
}
