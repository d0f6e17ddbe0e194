package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coremocks "github.com/mensunw/people-bets/mocks/port/core"
	persistencemocks "github.com/mensunw/people-bets/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "3f2b8c1e-7d4a-4e2b-9a61-0c5d2f7e8b90"

type fixture struct {
	uow    *persistencemocks.MockUnitOfWork
	users  *persistencemocks.MockUserRepository
	ledger *persistencemocks.MockLedgerRepository
	logger *coremocks.MockLogger
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		users:  persistencemocks.NewMockUserRepository(t),
		ledger: persistencemocks.NewMockLedgerRepository(t),
		logger: coremocks.NewMockLogger(t),
	}
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetLedgerRepository(mock.Anything).Return(f.ledger).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.svc = NewService(f.uow, f.logger)
	return f
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Debit locks the user and records a signed entry", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetForUpdate(ctx, userID).
			Return(entity.RestoreUser(userID, "alice", 300, nil, now, now), nil).Once()
		f.users.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Balance() == 200
		})).Return(nil).Once()
		f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Kind == entity.LedgerStake && e.Amount == -100 && e.ResultBalance == 200 && e.Reference == "stake:s1"
		})).Return(nil).Once()

		user, err := f.svc.Debit(ctx, userID, entity.LedgerStake, 100, "stake:s1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(200), user.Balance())
	})

	t.Run("Insufficient funds leaves the row untouched", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetForUpdate(ctx, userID).
			Return(entity.RestoreUser(userID, "alice", 50, nil, now, now), nil).Once()
		f.logger.EXPECT().Warn("Insufficient balance for debit", mock.Anything).Once()

		user, err := f.svc.Debit(ctx, userID, entity.LedgerStake, 100, "stake:s1", now)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Nil(t, user)
	})

	t.Run("Debit with a credit kind is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Debit(ctx, userID, entity.LedgerPayout, 100, "payout:s1", now)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Credit adds to the balance", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetForUpdate(ctx, userID).
			Return(entity.RestoreUser(userID, "alice", 0, nil, now, now), nil).Once()
		f.users.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
		f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Amount == 250 && e.ResultBalance == 250
		})).Return(nil).Once()

		user, err := f.svc.Credit(ctx, userID, entity.LedgerPayout, 250, "payout:s2", now)

		require.NoError(t, err)
		assert.Equal(t, int64(250), user.Balance())
	})

	t.Run("Duplicate reference is reported", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetForUpdate(ctx, userID).
			Return(entity.RestoreUser(userID, "alice", 0, nil, now, now), nil).Once()
		f.users.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
		f.ledger.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateKey).Once()
		f.logger.EXPECT().Warn("Ledger reference already recorded", mock.Anything).Once()

		_, err := f.svc.Credit(ctx, userID, entity.LedgerDailyGrant, 500, "grant:x:2024-05-01", now)

		assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetForUpdate(ctx, userID).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.svc.Credit(ctx, userID, entity.LedgerPayout, 10, "payout:s3", now)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
