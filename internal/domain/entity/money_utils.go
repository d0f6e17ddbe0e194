package entity

import (
	"math"
	"strings"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Currency is a whole-unit virtual currency; balances and stakes are int64 units.

// ParseAmount validates a user supplied amount and converts it to units.
// Accepts integer notation only ("250", "250.0"); fractions, signs other than a
// leading minus, and values that overflow int64 are rejected.
func ParseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.NewValidationError("amount", "empty value")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errs.NewValidationError("amount", "not a number")
	}
	if !d.IsInteger() {
		return 0, errs.NewValidationError("amount", "must be a whole number")
	}
	if d.Sign() <= 0 {
		return 0, errs.NewValidationError("amount", "must be greater than zero")
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errs.NewValidationError("amount", "too large")
	}

	return d.IntPart(), nil
}

// ValidateAmount checks an already numeric amount
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

// ParseTarget parses a proposition target; any finite decimal is allowed
func ParseTarget(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errs.NewValidationError("target", "empty value")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("target", "not a number")
	}
	return d, nil
}

// addChecked adds two balances and reports overflow
func addChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
