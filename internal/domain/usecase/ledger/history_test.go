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

func TestGetHistory(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns records in creation order", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		records := []*entity.Transaction{
			{ID: 1, UserID: 1, Type: entity.TypeDeposit, AmountInCents: 10000, CreatedAt: fixedTime},
			{ID: 2, UserID: 1, Type: entity.TypeWithdraw, AmountInCents: 2500, CreatedAt: fixedTime},
			{ID: 5, UserID: 1, Type: entity.TypeTransfer, AmountInCents: 1000, CreatedAt: fixedTime},
		}

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 6500), nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(records, nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.GetHistory(ctx, 1)

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, uint64(1), result[0].ID)
		assert.Equal(t, uint64(2), result[1].ID)
		assert.Equal(t, uint64(5), result[2].ID)
	})

	t.Run("Empty history is not an error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 0), nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).
			Return([]*entity.Transaction{}, nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.GetHistory(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Unknown user yields not found", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(99)).
			Return(nil, errs.ErrUserNotFound).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.GetHistory(ctx, 99)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Storage failure propagates", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 0), nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).
			Return(nil, errs.ErrStorage).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.GetHistory(ctx, 1)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
