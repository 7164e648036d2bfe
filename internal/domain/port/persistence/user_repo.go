package persistence

import (
	"context"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// UserRepository defines the methods the core needs to read and mutate users.
// Balance writes must happen through a repository bound to a unit of work so
// they commit or roll back together with the matching transaction records.
type UserRepository interface {
	// GetByID retrieves a user by ID.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the ID exists
	// - ErrStorage: if the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID and takes an exclusive row
	// lock that is held until the surrounding unit of work ends. Must be
	// called inside a transactional scope.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the ID exists
	// - ErrStorage: if the store is unreachable or lock acquisition fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByName retrieves a user by their unique name.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the name exists
	// - ErrStorage: if the store is unreachable
	GetByName(ctx context.Context, name string) (*entity.User, error)

	// Create inserts a new user and assigns its ID and creation time.
	//
	// Possible errors:
	// - ErrDuplicateName: if the name is already taken
	// - ErrStorage: if the store is unreachable
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance writes a new balance for the user within the current
	// transactional scope.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the ID exists
	// - ErrStorage: if the store is unreachable
	UpdateBalance(ctx context.Context, id uint64, balanceInCents int64) error
}
