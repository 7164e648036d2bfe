package persistence

import (
	"context"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// TransactionRepository defines the methods the core needs to record and
// read transaction history.
type TransactionRepository interface {
	// Create saves a new transaction record and assigns its ID.
	//
	// Possible errors:
	// - ErrUserNotFound: if the referenced user does not exist
	// - ErrStorage: if the store is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns all records for the user ordered by creation
	// (ascending ID). An empty history is not an error.
	//
	// Possible errors:
	// - ErrStorage: if the store is unreachable
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
