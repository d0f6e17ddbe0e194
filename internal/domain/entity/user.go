package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	errs "github.com/mensunw/people-bets/internal/domain/error"
)

// InitialBalance is granted once when a profile is bootstrapped
const InitialBalance int64 = 1000

// MaxUsernameLength bounds display names
const MaxUsernameLength = 50

// User is a player profile holding a non-negative currency balance
type User struct {
	ID            string     // Identity provider subject (UUID)
	Username      string     // Display name
	balance       int64      // Whole currency units, never negative
	LastClaimDate *time.Time // Last daily grant claim, nil if never claimed
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new user with the given ID and initial balance
func NewUser(id, username string, initialBalance int64, now time.Time) (*User, error) {
	if err := ValidateUserID(id); err != nil {
		return nil, err
	}
	if initialBalance < 0 {
		return nil, errs.NewValidationError("balance", "cannot be negative")
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultUsername(id)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, errs.NewValidationError("username", "too long")
	}

	return &User{
		ID:        id,
		Username:  username,
		balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from persisted state without validation
func RestoreUser(id, username string, balance int64, lastClaim *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:            id,
		Username:      username,
		balance:       balance,
		LastClaimDate: lastClaim,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// ValidateUserID checks that id is a UUID as issued by the identity provider
func ValidateUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.NewValidationError("user_id", "must be a UUID")
	}
	return nil
}

// DefaultUsername derives a display name from the user id
func DefaultUsername(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return "user_" + short
}

// Balance returns the current balance in units
func (u *User) Balance() int64 {
	return u.balance
}

// CanAfford reports whether a debit of amount would keep the balance non-negative
func (u *User) CanAfford(amount int64) bool {
	return amount <= u.balance
}

// Debit removes amount from the balance
func (u *User) Debit(amount int64, now time.Time) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !u.CanAfford(amount) {
		return errs.NewInsufficientFundsError(u.ID, amount, u.balance)
	}
	u.balance -= amount
	u.UpdatedAt = now
	return nil
}

// Credit adds amount to the balance. A zero credit is a no-op.
func (u *User) Credit(amount int64, now time.Time) error {
	if amount < 0 {
		return errs.NewValidationError("amount", "credit cannot be negative")
	}
	if amount == 0 {
		return nil
	}
	sum, ok := addChecked(u.balance, amount)
	if !ok {
		return errs.NewValidationError("amount", "balance would overflow")
	}
	u.balance = sum
	u.UpdatedAt = now
	return nil
}

// MarkGrantClaimed records a daily grant claim at now
func (u *User) MarkGrantClaimed(now time.Time) {
	claimed := now
	u.LastClaimDate = &claimed
	u.UpdatedAt = now
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	c := *u
	if u.LastClaimDate != nil {
		t := *u.LastClaimDate
		c.LastClaimDate = &t
	}
	return &c
}
