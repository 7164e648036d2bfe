package repository

import (
	"context"
	"fmt"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the persistence.TransactionRepository
// port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new transaction record and copies the assigned ID back
// into the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:        transaction.UserID,
		Type:          string(transaction.Type),
		AmountInCents: transaction.AmountInCents,
		CreatedAt:     transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction record", map[string]any{
			"user_id":          transaction.UserID,
			"type":             transaction.Type,
			"connection_error": r.errorClassifier.IsConnectionError(result.Error),
			"error":            result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	return nil
}

// ListByUser returns all records for the user ordered by creation
// (ascending ID)
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		m := &transactionModels[i]
		transactions = append(transactions, &entity.Transaction{
			ID:            m.ID,
			UserID:        m.UserID,
			Type:          entity.TransactionType(m.Type),
			AmountInCents: m.AmountInCents,
			CreatedAt:     m.CreatedAt,
		})
	}

	return transactions, nil
}
