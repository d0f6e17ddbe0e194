package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	"github.com/mensunw/people-bets/internal/domain/port/persistence"
)

// Service applies balance movements to locked user rows and records each one
// in the ledger. Every method must run inside a UnitOfWork transaction.
type Service struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewService creates a ledger service
func NewService(uow persistence.UnitOfWork, logger coreport.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Movement describes one balance change
type Movement struct {
	UserID    string
	Kind      entity.LedgerKind
	Amount    int64
	Reference string
}

// Apply locks the user row, moves the balance and appends the ledger entry.
// It returns the user with the new balance.
func (s *Service) Apply(ctx context.Context, mv Movement, now time.Time) (*entity.User, error) {
	if !mv.Kind.IsValid() {
		return nil, errs.NewValidationError("kind", fmt.Sprintf("unknown ledger kind %q", mv.Kind))
	}

	users := s.uow.GetUserRepository(ctx)
	user, err := users.GetForUpdate(ctx, mv.UserID)
	if err != nil {
		return nil, err
	}

	if mv.Kind.IsCredit() {
		err = user.Credit(mv.Amount, now)
	} else {
		err = user.Debit(mv.Amount, now)
	}
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientFunds) {
			s.logger.Warn("Insufficient balance for debit", map[string]any{
				"user_id":   mv.UserID,
				"amount":    mv.Amount,
				"balance":   user.Balance(),
				"reference": mv.Reference,
			})
		}
		return nil, err
	}

	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.Record(ctx, user, mv, now); err != nil {
		return nil, err
	}

	s.logger.Debug("Ledger movement applied", map[string]any{
		"user_id":     mv.UserID,
		"kind":        string(mv.Kind),
		"amount":      mv.Amount,
		"reference":   mv.Reference,
		"new_balance": user.Balance(),
	})

	return user, nil
}

// Credit adds amount to the user's balance
func (s *Service) Credit(ctx context.Context, userID string, kind entity.LedgerKind, amount int64, reference string, now time.Time) (*entity.User, error) {
	if !kind.IsCredit() {
		return nil, errs.NewValidationError("kind", "not a credit kind")
	}
	return s.Apply(ctx, Movement{UserID: userID, Kind: kind, Amount: amount, Reference: reference}, now)
}

// Debit removes amount from the user's balance, failing with
// InsufficientFundsError when the balance would go negative
func (s *Service) Debit(ctx context.Context, userID string, kind entity.LedgerKind, amount int64, reference string, now time.Time) (*entity.User, error) {
	if kind.IsCredit() {
		return nil, errs.NewValidationError("kind", "not a debit kind")
	}
	return s.Apply(ctx, Movement{UserID: userID, Kind: kind, Amount: amount, Reference: reference}, now)
}

// Record appends a ledger entry for a balance that was already changed on user,
// such as the opening balance of a new profile
func (s *Service) Record(ctx context.Context, user *entity.User, mv Movement, now time.Time) error {
	entry, err := entity.NewLedgerEntry(user.ID, mv.Kind, mv.Amount, mv.Reference, user.Balance(), now)
	if err != nil {
		return err
	}
	if err := s.uow.GetLedgerRepository(ctx).Create(ctx, entry); err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			s.logger.Warn("Ledger reference already recorded", map[string]any{
				"user_id":   user.ID,
				"reference": mv.Reference,
			})
		}
		return err
	}
	return nil
}
