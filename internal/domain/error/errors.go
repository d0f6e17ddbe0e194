package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4001
	CodeInsufficientFunds = 4002
	CodeBettingClosed     = 4003
	CodeDuplicateStake    = 4004
	CodeInvalidState      = 4005
	CodeAlreadyMember     = 4006
	CodeUnauthenticated   = 4010
	CodeAuthorization     = 4030
	CodeNotFound          = 4040
	CodeConflict          = 4090
	CodeAlreadyClaimed    = 4290

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrValidation is returned when input is malformed
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization is returned when the actor lacks the required role
	ErrAuthorization = errors.New("not authorized")

	// ErrUnauthenticated is returned when no verified identity accompanies a request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidState is returned when a proposition is in the wrong lifecycle state
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrBettingClosed is returned when a stake targets a proposition that is no longer bettable
	ErrBettingClosed = fmt.Errorf("%w: betting is closed", ErrInvalidState)

	// ErrInsufficientFunds is returned when a debit exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateStake is returned on a second stake by the same user on one proposition
	ErrDuplicateStake = errors.New("user already has a stake on this proposition")

	// ErrAlreadyClaimed is returned when the daily grant is requested before eligibility
	ErrAlreadyClaimed = errors.New("daily grant already claimed")

	// ErrAlreadyMember is returned when a user joins a group twice
	ErrAlreadyMember = errors.New("user is already a member of this group")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrGroupNotFound is returned when the requested group doesn't exist
	ErrGroupNotFound = fmt.Errorf("group %w", ErrNotFound)

	// ErrPropositionNotFound is returned when the requested proposition doesn't exist
	ErrPropositionNotFound = fmt.Errorf("proposition %w", ErrNotFound)

	// ErrMembershipNotFound is returned when a user is not a member of the group
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)

	// ErrConflict is returned when a concurrent transaction won; the caller may retry
	ErrConflict = errors.New("concurrent update conflict, try again")

	// ErrStoreUnavailable is returned when the store cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDuplicateKey is returned by repositories when a unique index rejects a write
	ErrDuplicateKey = errors.New("duplicate key")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrBettingClosed):
		return CodeBettingClosed
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrDuplicateStake):
		return CodeDuplicateStake
	case errors.Is(err, ErrAlreadyMember):
		return CodeAlreadyMember
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrAuthorization):
		return CodeAuthorization
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicateKey):
		return CodeConflict
	case errors.Is(err, ErrAlreadyClaimed):
		return CodeAlreadyClaimed
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// IsBusinessError reports whether err is a rule violation the caller caused,
// as opposed to an infrastructure failure worth retrying.
func IsBusinessError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000 && code != CodeConflict
}

// ValidationError describes which field failed validation
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AuthorizationError records which actor attempted what
type AuthorizationError struct {
	ActorID string
	Action  string
	Reason  string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %s may not %s: %s", e.ActorID, e.Action, e.Reason)
}

// Is checks if the target error is an ErrAuthorization
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrAuthorization
}

// LogFields returns a map of fields for structured logging
func (e *AuthorizationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "authorization",
		"actor_id":   e.ActorID,
		"action":     e.Action,
		"reason":     e.Reason,
		"error_code": CodeAuthorization,
	}
}

// NewAuthorizationError creates a new detailed authorization error
func NewAuthorizationError(actorID, action, reason string) error {
	return &AuthorizationError{ActorID: actorID, Action: action, Reason: reason}
}

// InvalidStateError describes an operation attempted against the wrong lifecycle state
type InvalidStateError struct {
	PropositionID string
	Status        string
	Reason        string
	Err           error
}

// Error implements the error interface
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("proposition %s (status %s): %s", e.PropositionID, e.Status, e.Reason)
}

// Unwrap returns the underlying error
func (e *InvalidStateError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidState
	}
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InvalidStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "invalid_state",
		"proposition_id": e.PropositionID,
		"status":         e.Status,
		"reason":         e.Reason,
		"error_code":     ErrorCode(e),
	}
}

// NewInvalidStateError creates an invalid state error
func NewInvalidStateError(propositionID, status, reason string) error {
	return &InvalidStateError{PropositionID: propositionID, Status: status, Reason: reason}
}

// NewBettingClosedError creates an invalid state error that also matches ErrBettingClosed
func NewBettingClosedError(propositionID, status, reason string) error {
	return &InvalidStateError{PropositionID: propositionID, Status: status, Reason: reason, Err: ErrBettingClosed}
}

// InsufficientFundsError provides detailed error information for insufficient balance
type InsufficientFundsError struct {
	UserID  string
	Amount  int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: required %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID string, amount, balance int64) error {
	return &InsufficientFundsError{UserID: userID, Amount: amount, Balance: balance}
}

// DuplicateStakeError provides detailed information about a repeated stake attempt
type DuplicateStakeError struct {
	PropositionID string
	UserID        string
}

// Error implements the error interface
func (e *DuplicateStakeError) Error() string {
	return fmt.Sprintf("duplicate stake: user %s already staked on proposition %s",
		e.UserID, e.PropositionID)
}

// Is checks if the target error is an ErrDuplicateStake
func (e *DuplicateStakeError) Is(target error) bool {
	return target == ErrDuplicateStake
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateStakeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "duplicate_stake",
		"proposition_id": e.PropositionID,
		"user_id":        e.UserID,
		"error_code":     CodeDuplicateStake,
	}
}

// NewDuplicateStakeError creates a new detailed duplicate stake error
func NewDuplicateStakeError(propositionID, userID string) error {
	return &DuplicateStakeError{PropositionID: propositionID, UserID: userID}
}

// AlreadyClaimedError reports when the next daily grant becomes available
type AlreadyClaimedError struct {
	UserID      string
	NextClaimAt time.Time
	Remaining   time.Duration
}

// Error implements the error interface
func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("daily grant already claimed by user %s, next claim in %s",
		e.UserID, e.Remaining.Truncate(time.Second))
}

// Is checks if the target error is an ErrAlreadyClaimed
func (e *AlreadyClaimedError) Is(target error) bool {
	return target == ErrAlreadyClaimed
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyClaimedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "already_claimed",
		"user_id":       e.UserID,
		"next_claim_at": e.NextClaimAt,
		"remaining_s":   int64(e.Remaining.Seconds()),
		"error_code":    CodeAlreadyClaimed,
	}
}

// NewAlreadyClaimedError creates a new detailed already-claimed error
func NewAlreadyClaimedError(userID string, nextClaimAt time.Time, remaining time.Duration) error {
	return &AlreadyClaimedError{UserID: userID, NextClaimAt: nextClaimAt, Remaining: remaining}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInsufficientFundsError checks if the error is related to insufficient balance
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsConflictError checks if the error signals a lost concurrent transaction
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
