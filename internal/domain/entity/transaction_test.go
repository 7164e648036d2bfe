package entity

import (
	"testing"
	"time"

	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coremocks "github.com/avoronova/balance-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates valid transaction", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		record, err := NewTransaction(42, 10050, TypeDeposit, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), record.UserID)
		assert.Equal(t, TypeDeposit, record.Type)
		assert.Equal(t, int64(10050), record.AmountInCents)
		assert.Equal(t, "100.50", record.Amount())
		assert.Equal(t, fixedTime, record.CreatedAt)
	})

	t.Run("Rejects zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		record, err := NewTransaction(0, 100, TypeDeposit, mockTime)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Rejects non-positive amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		for _, cents := range []int64{0, -1} {
			record, err := NewTransaction(42, cents, TypeWithdraw, mockTime)

			assert.Nil(t, record)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("Rejects unknown type", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		record, err := NewTransaction(42, 100, TransactionType("refund"), mockTime)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("deposit"))
	assert.True(t, IsValidTransactionType("withdraw"))
	assert.True(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType("refund"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Deposit"))
}
