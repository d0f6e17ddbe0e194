package database

import (
	"errors"
	"fmt"

	errs "github.com/mensunw/people-bets/internal/domain/error"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised outside a repository, at transaction
// boundaries, to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. A serialization failure
// on commit becomes ErrConflict so the caller can tell the client to retry.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	mapped := m.classifier.Translate(err, errs.ErrNotFound)
	if errors.Is(mapped, errs.ErrInternalServer) {
		return fmt.Errorf("%w: %s: %v", errs.ErrInternalServer, operation, err)
	}
	return mapped
}
