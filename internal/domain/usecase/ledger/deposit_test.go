package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coremocks "github.com/avoronova/balance-ledger/mocks/port/core"
	persistencemocks "github.com/avoronova/balance-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userWithBalance(id uint64, name string, cents int64) *entity.User {
	user := &entity.User{ID: id, Name: name}
	user.SetBalance(cents)
	return user
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful deposit", func(t *testing.T) {
		// Setup mocks
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, uint64(1), int64(15050)).Return(nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(record *entity.Transaction) bool {
			return record.UserID == 1 &&
				record.Type == entity.TypeDeposit &&
				record.AmountInCents == 5050
		})).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		// Execute
		balance, err := service.Deposit(ctx, 1, "50.50")

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "150.50", balance)
	})

	t.Run("Invalid amount rejected before any store access", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockTime, mockLogger)

		for _, amount := range []string{"", "-10.00", "0", "0.00", "1.234", "abc"} {
			balance, err := service.Deposit(ctx, 1, amount)

			assert.Empty(t, balance)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("User not found rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(99)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		balance, err := service.Deposit(ctx, 99, "50.00")

		assert.Empty(t, balance)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Record insert failure rolls back the balance write", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, uint64(1), int64(15000)).Return(nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrStorage).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		balance, err := service.Deposit(ctx, 1, "50.00")

		assert.Empty(t, balance)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Commit failure surfaces as storage error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, uint64(1), int64(15000)).Return(nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(errs.ErrStorage).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		balance, err := service.Deposit(ctx, 1, "50.00")

		assert.Empty(t, balance)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
