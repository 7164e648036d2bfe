package usecase

import (
	"context"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// LedgerUseCase defines the balance-mutating operations and the history read.
// Amounts cross this boundary as decimal strings ("100.50"); results carry
// the post-operation balance in the same format.
type LedgerUseCase interface {
	// Deposit increases the user's balance and records a deposit
	// transaction atomically. Returns the new balance.
	Deposit(ctx context.Context, userID uint64, amount string) (string, error)

	// Withdraw decreases the user's balance and records a withdraw
	// transaction atomically. Returns the new balance.
	Withdraw(ctx context.Context, userID uint64, amount string) (string, error)

	// Transfer moves the amount between two users, recording one transfer
	// transaction per participant, all within a single atomic commit.
	Transfer(ctx context.Context, fromUserID, toUserID uint64, amount string) error

	// GetHistory returns the user's transaction records in creation order.
	GetHistory(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
