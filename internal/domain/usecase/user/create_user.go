package user

import (
	"context"
	"errors"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
)

// CreateUser creates a new user with the given unique name and a zero
// balance. The name check runs before the insert; the unique index on the
// name column backs it up under concurrent creation.
func (u *UserUseCase) CreateUser(ctx context.Context, name string) (*entity.User, error) {
	if name == "" {
		return nil, errs.ErrInvalidUserName
	}

	_, err := u.userRepo.GetByName(ctx, name)
	if err == nil {
		return nil, errs.ErrDuplicateName
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(name, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"name":  name,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"name":    name,
	})

	return user, nil
}
