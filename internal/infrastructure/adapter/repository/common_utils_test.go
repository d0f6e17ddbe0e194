package repository

import (
	"context"
	"errors"
	"testing"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifierClassify(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"unique violation", errors.New(`ERROR: duplicate key value violates unique constraint "idx_stakes_proposition_user" (SQLSTATE 23505)`), DuplicateKeyError},
		{"serialization", errors.New("ERROR: could not serialize access due to read/write dependencies among transactions (SQLSTATE 40001)"), LockError},
		{"deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), LockError},
		{"reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"dial", errors.New("dial tcp 10.0.0.1:5432: no route to host"), ConnectionError},
		{"check", errors.New(`new row for relation "users" violates check constraint "chk_users_balance_non_negative"`), ConstraintError},
		{"other", errors.New("syntax error at or near"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
		})
	}
}

func TestErrorClassifierTranslate(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.Translate(nil, errs.ErrUserNotFound))
	assert.ErrorIs(t, c.Translate(gorm.ErrRecordNotFound, errs.ErrUserNotFound), errs.ErrUserNotFound)
	assert.ErrorIs(t, c.Translate(gorm.ErrDuplicatedKey, errs.ErrNotFound), errs.ErrDuplicateKey)
	assert.ErrorIs(t, c.Translate(errors.New("could not serialize access"), errs.ErrNotFound), errs.ErrConflict)
	assert.ErrorIs(t, c.Translate(errors.New("connection refused"), errs.ErrNotFound), errs.ErrStoreUnavailable)
	assert.ErrorIs(t, c.Translate(context.DeadlineExceeded, errs.ErrNotFound), errs.ErrStoreUnavailable)
	assert.ErrorIs(t, c.Translate(errors.New("syntax error"), errs.ErrNotFound), errs.ErrInternalServer)
}
