package dto

import "fmt"

// User-facing messages returned by the API
const (
	MsgUserNotFound      = "User not found"
	MsgSenderNotFound    = "Sender not found"
	MsgRecipientNotFound = "Recipient not found"
	MsgUserAlreadyExists = "User already exists"
	MsgInsufficientFunds = "Insufficient funds on balance"
	MsgInvalidAmount     = "Amount must be positive"
	MsgSameUserTransfer  = "Cannot transfer funds to the same user"
	MsgDatabaseError     = "Database error"
	MsgInternalError     = "Internal server error"

	MsgTransferSuccess = "Transfer completed successfully."
)

// DepositSuccessMessage builds the deposit confirmation with the new balance
func DepositSuccessMessage(balance string) string {
	return fmt.Sprintf("Deposit successful. Current balance - %s", balance)
}

// WithdrawSuccessMessage builds the withdrawal confirmation with the new balance
func WithdrawSuccessMessage(balance string) string {
	return fmt.Sprintf("Withdrawal successful. Current balance - %s", balance)
}
