package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount     = 4001
	CodeInsufficientFunds = 4002
	CodeSameUserTransfer  = 4003
	CodeDuplicateName     = 4004
	CodeInvalidUserID     = 4005
	CodeInvalidRequest    = 4006
	CodeUserNotFound      = 4040
	CodeSenderNotFound    = 4041
	CodeRecipientNotFound = 4042

	// 5xxx - Server errors
	CodeStorage        = 5001
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when the operation amount is not a positive decimal
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a user's balance does not cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameUserTransfer is returned when a transfer names the same user on both sides
	ErrSameUserTransfer = errors.New("cannot transfer funds to the same user")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrSenderNotFound is returned when the transfer sender doesn't exist
	ErrSenderNotFound = errors.New("sender not found")

	// ErrRecipientNotFound is returned when the transfer recipient doesn't exist
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrDuplicateName is returned when creating a user whose name is already taken
	ErrDuplicateName = errors.New("user already exists")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidUserName is returned when the user name is empty
	ErrInvalidUserName = errors.New("user name cannot be empty")

	// ErrInvalidTransactionType is returned when the record type is not a known kind
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorage is returned when the store is unreachable or a commit fails
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrSameUserTransfer):
		return CodeSameUserTransfer
	case errors.Is(err, ErrDuplicateName):
		return CodeDuplicateName
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidUserName):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrSenderNotFound):
		return CodeSenderNotFound
	case errors.Is(err, ErrRecipientNotFound):
		return CodeRecipientNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed debit
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsValidationError reports whether the error is a client-side validation kind
// (mapped to 4xx by the API layer) as opposed to a storage or internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrSameUserTransfer) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidUserName) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrSenderNotFound) ||
		errors.Is(err, ErrRecipientNotFound)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsStorageError checks if the error originated in the persistence layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
