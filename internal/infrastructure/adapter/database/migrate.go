package database

import (
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all ledger tables. The unique
// index on users.name backs the duplicate-name check under concurrent
// creation.
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
