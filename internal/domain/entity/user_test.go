package entity

import (
	"testing"
	"time"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "3f2b8c1e-7d4a-4e2b-9a61-0c5d2f7e8b90"

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(testUserID, "alice", InitialBalance, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, int64(1000), user.Balance())
		assert.Nil(t, user.LastClaimDate)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty username falls back to id prefix", func(t *testing.T) {
		user, err := NewUser(testUserID, "   ", InitialBalance, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "user_3f2b8c1e", user.Username)
	})

	t.Run("Non UUID id is rejected", func(t *testing.T) {
		user, err := NewUser("not-a-uuid", "alice", InitialBalance, fixedTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})

	t.Run("Negative balance is rejected", func(t *testing.T) {
		user, err := NewUser(testUserID, "alice", -1, fixedTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})
}

func TestUserDebit(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := start.Add(time.Minute)

	t.Run("Debit reduces balance exactly", func(t *testing.T) {
		user, _ := NewUser(testUserID, "alice", 1000, start)

		require.NoError(t, user.Debit(300, later))
		assert.Equal(t, int64(700), user.Balance())
		assert.Equal(t, later, user.UpdatedAt)
	})

	t.Run("Debit of entire balance is allowed", func(t *testing.T) {
		user, _ := NewUser(testUserID, "alice", 1000, start)

		require.NoError(t, user.Debit(1000, later))
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Debit above balance fails and leaves balance untouched", func(t *testing.T) {
		user, _ := NewUser(testUserID, "alice", 100, start)

		err := user.Debit(101, later)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(100), user.Balance())
		assert.Equal(t, start, user.UpdatedAt)
	})

	t.Run("Zero debit is a validation error", func(t *testing.T) {
		user, _ := NewUser(testUserID, "alice", 100, start)

		assert.ErrorIs(t, user.Debit(0, later), errs.ErrValidation)
	})
}

func TestUserCredit(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	user, _ := NewUser(testUserID, "alice", 10, start)

	require.NoError(t, user.Credit(250, start))
	assert.Equal(t, int64(260), user.Balance())

	require.NoError(t, user.Credit(0, start))
	assert.Equal(t, int64(260), user.Balance())

	assert.ErrorIs(t, user.Credit(-5, start), errs.ErrValidation)

	huge := RestoreUser(testUserID, "alice", 1<<62, nil, start, start)
	assert.ErrorIs(t, huge.Credit(1<<62, start), errs.ErrValidation)
}

func TestUserClone(t *testing.T) {
	claimed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	user := RestoreUser(testUserID, "alice", 50, &claimed, claimed, claimed)

	clone := user.Clone()
	clone.MarkGrantClaimed(claimed.Add(48 * time.Hour))

	assert.Equal(t, claimed, *user.LastClaimDate)
	assert.NotEqual(t, *user.LastClaimDate, *clone.LastClaimDate)
}
