package entity

import (
	"fmt"
	"time"

	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
)

// TransactionType identifies the kind of ledger operation a record belongs to.
type TransactionType string

// Transaction types. A transfer produces two records, one per participant,
// both tagged TypeTransfer; direction is implied by the balance change.
const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypeTransfer TransactionType = "transfer"
)

// IsValidTransactionType reports whether t is one of the known types.
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TypeDeposit, TypeWithdraw, TypeTransfer:
		return true
	}
	return false
}

// Transaction is an immutable record of a completed balance mutation.
// The amount is always positive; the type encodes the operation.
type Transaction struct {
	ID            uint64          // Unique identifier, assigned by storage
	UserID        uint64          // User this record belongs to
	Type          TransactionType // Operation kind
	AmountInCents int64           // Amount moved, in cents
	CreatedAt     time.Time       // When the record was created
}

// NewTransaction creates a transaction record for a completed operation leg.
func NewTransaction(
	userID uint64,
	amountInCents int64,
	txType TransactionType,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents <= 0 {
		return nil, fmt.Errorf("%w: must be positive", errs.ErrInvalidAmount)
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}

	return &Transaction{
		UserID:        userID,
		Type:          txType,
		AmountInCents: amountInCents,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the record amount as a string with 2 decimal places.
func (t *Transaction) Amount() string {
	return CentsToString(t.AmountInCents)
}
