package dto

import (
	"time"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// CreateUserRequest represents the API request for creating a user
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserResponse represents the API response for a user
type UserResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Balance:   user.FormattedBalance(),
		CreatedAt: user.CreatedAt,
	}
}
