package dto

import (
	"time"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// AmountRequest represents the API request body for deposits and withdrawals.
// Amounts are decimal strings with up to two fractional digits.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TransferRequest represents the API request for transferring funds
type TransferRequest struct {
	FromUserID uint64 `json:"from_user_id" binding:"required"`
	ToUserID   uint64 `json:"to_user_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// MessageResponse represents a success confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// TransactionHistoryItem represents a single record in a user's history
type TransactionHistoryItem struct {
	ID        uint64    `json:"id"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// UserTransactionsResponse represents the API response for a user's history
type UserTransactionsResponse struct {
	UserID       uint64                   `json:"user_id"`
	Transactions []TransactionHistoryItem `json:"transactions"`
}

// NewUserTransactionsResponse maps transaction entities to the history response
func NewUserTransactionsResponse(userID uint64, records []*entity.Transaction) UserTransactionsResponse {
	items := make([]TransactionHistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, TransactionHistoryItem{
			ID:        record.ID,
			Amount:    record.Amount(),
			Type:      string(record.Type),
			CreatedAt: record.CreatedAt,
		})
	}
	return UserTransactionsResponse{
		UserID:       userID,
		Transactions: items,
	}
}
