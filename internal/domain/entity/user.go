package entity

import (
	"time"

	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
)

// User represents an account holder with a monetary balance.
type User struct {
	ID        uint64    // Unique identifier, assigned by storage
	Name      string    // Unique name across all users
	balance   int64     // Balance in cents to avoid floating point precision issues (private)
	CreatedAt time.Time // When the user was created
}

// NewUser creates a new user with a zero balance.
func NewUser(name string, timeProvider coreport.TimeProvider) (*User, error) {
	if name == "" {
		return nil, errs.ErrInvalidUserName
	}

	return &User{
		Name:      name,
		balance:   0,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Balance returns the current balance in cents.
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places.
func (u *User) FormattedBalance() string {
	return CentsToString(u.balance)
}

// SetBalance overwrites the balance directly. Intended for repositories
// hydrating entities from storage.
func (u *User) SetBalance(balanceInCents int64) {
	u.balance = balanceInCents
}

// Credit adds the amount to the balance.
func (u *User) Credit(amountInCents int64) {
	u.balance += amountInCents
}

// Debit subtracts the amount from the balance.
// Returns ErrInsufficientFunds if the balance does not cover the amount.
func (u *User) Debit(amountInCents int64) error {
	if u.balance < amountInCents {
		return errs.ErrInsufficientFunds
	}
	u.balance -= amountInCents
	return nil
}
