package user

import (
	"context"
	"errors"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/domain/port/persistence"
	"github.com/avoronova/balance-ledger/internal/domain/port/usecase"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser retrieves a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to get user", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	return user, nil
}

// UserExists checks if a user with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := u.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
