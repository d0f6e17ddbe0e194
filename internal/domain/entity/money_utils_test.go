package entity

import (
	"testing"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1", 1},
			{"250", 250},
			{" 300 ", 300},
			{"100.0", 100},
			{"9223372036854775807", 9223372036854775807},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, amount)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []string{
			"",
			"abc",
			"0",
			"-5",
			"12.5",
			"9223372036854775808",
			"$100",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := ParseAmount(tc)
				assert.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("100.5")
	assert.NoError(t, err)
	assert.Equal(t, "100.5", target.String())

	negative, err := ParseTarget("-3")
	assert.NoError(t, err)
	assert.Equal(t, "-3", negative.String())

	_, err = ParseTarget("lots")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = ParseTarget("")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
