package persistence

import (
	"context"

	"github.com/mensunw/people-bets/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user profiles
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStoreUnavailable: If the store cannot be reached
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetForUpdate retrieves a user and holds a row lock on it until the
	// surrounding transaction ends. Every balance mutation goes through here.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrConflict: If the lock could not be obtained
	GetForUpdate(ctx context.Context, id string) (*entity.User, error)

	// Create stores a new user
	//
	// Possible errors:
	// - ErrDuplicateKey: If a user with the same ID already exists
	Create(ctx context.Context, user *entity.User) error

	// Update persists balance, username and grant claim date
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Update(ctx context.Context, user *entity.User) error

	// GetUsernames resolves display names for a set of user IDs.
	// Unknown IDs are omitted from the result.
	GetUsernames(ctx context.Context, ids []string) (map[string]string, error)
}
