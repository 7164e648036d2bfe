package usecase

import (
	"context"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// UserUseCase defines user lifecycle operations. Users are created with a
// zero balance and are read-only afterwards except for the balance, which
// only the ledger engine mutates.
type UserUseCase interface {
	// CreateUser creates a new user with the given unique name.
	CreateUser(ctx context.Context, name string) (*entity.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// UserExists checks if a user exists with the given ID.
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
