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

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful transfer records one leg per participant", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).
			Return(userWithBalance(2, "bob", 2000), nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, uint64(1), int64(4000)).Return(nil).Once()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, uint64(2), int64(8000)).Return(nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(record *entity.Transaction) bool {
			return record.UserID == 1 &&
				record.Type == entity.TypeTransfer &&
				record.AmountInCents == 6000
		})).Return(nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(record *entity.Transaction) bool {
			return record.UserID == 2 &&
				record.Type == entity.TypeTransfer &&
				record.AmountInCents == 6000
		})).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 2, "60.00")

		require.NoError(t, err)
	})

	t.Run("Locks rows in ascending ID order", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		var lockOrder []uint64

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, mock.Anything).
			Run(func(_ context.Context, id uint64) {
				lockOrder = append(lockOrder, id)
			}).
			RunAndReturn(func(_ context.Context, id uint64) (*entity.User, error) {
				return userWithBalance(id, "user", 10000), nil
			}).Twice()
		mockUserRepo.EXPECT().UpdateBalance(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Twice()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		// Sender has the higher ID; the lower ID must still be locked first.
		err := service.Transfer(ctx, 7, 3, "10.00")

		require.NoError(t, err)
		assert.Equal(t, []uint64{3, 7}, lockOrder)
	})

	t.Run("Same user transfer rejected before any store access", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 1, "60.00")

		assert.ErrorIs(t, err, errs.ErrSameUserTransfer)
	})

	t.Run("Amount validated before same user check", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 1, "-60.00")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing sender", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 2, "60.00")

		assert.ErrorIs(t, err, errs.ErrSenderNotFound)
	})

	t.Run("Missing recipient", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 10000), nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 2, "60.00")

		assert.ErrorIs(t, err, errs.ErrRecipientNotFound)
	})

	t.Run("Sender error wins when both sides are missing", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		// Recipient has the lower ID, so its lock attempt fails first.
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(2)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 2, 1, "60.00")

		assert.ErrorIs(t, err, errs.ErrSenderNotFound)
	})

	t.Run("Insufficient sender funds rejected on the locked balance", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).
			Return(userWithBalance(1, "alice", 5000), nil).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).
			Return(userWithBalance(2, "bob", 0), nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		err := service.Transfer(ctx, 1, 2, "60.00")

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})
}
