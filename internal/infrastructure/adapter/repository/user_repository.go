package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements the persistence.UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:        userModel.ID,
		Name:      userModel.Name,
		CreatedAt: userModel.CreatedAt,
	}
	user.SetBalance(userModel.Balance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateName
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn(fmt.Sprintf("Lock contention when %s", operation), map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}

	return modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user by ID with an exclusive row lock.
// The lock is held until the surrounding transaction commits or rolls back.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error)
	}

	return modelToEntity(&userModel), nil
}

// GetByName retrieves a user by their unique name
func (r *UserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by name", result.Error)
	}

	return modelToEntity(&userModel), nil
}

// Create inserts a new user and copies the assigned ID back into the entity
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:      user.Name,
		Balance:   user.Balance(),
		CreatedAt: user.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
	return nil
}

// UpdateBalance writes a new balance for the user within the current
// transactional scope
func (r *UserRepository) UpdateBalance(ctx context.Context, id uint64, balanceInCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("balance", balanceInCents)

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
