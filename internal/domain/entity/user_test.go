package entity

import (
	"testing"
	"time"

	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coremocks "github.com/avoronova/balance-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates user with zero balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Name)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.FormattedBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserName)
	})
}

func TestUserBalanceOperations(t *testing.T) {
	t.Run("Credit adds to balance", func(t *testing.T) {
		user := &User{ID: 1, Name: "alice"}
		user.SetBalance(10000)

		user.Credit(5050)

		assert.Equal(t, int64(15050), user.Balance())
		assert.Equal(t, "150.50", user.FormattedBalance())
	})

	t.Run("Debit subtracts from balance", func(t *testing.T) {
		user := &User{ID: 1, Name: "alice"}
		user.SetBalance(10000)

		err := user.Debit(2550)

		require.NoError(t, err)
		assert.Equal(t, int64(7450), user.Balance())
	})

	t.Run("Debit of entire balance succeeds", func(t *testing.T) {
		user := &User{ID: 1, Name: "alice"}
		user.SetBalance(10000)

		err := user.Debit(10000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Debit beyond balance fails and leaves balance unchanged", func(t *testing.T) {
		user := &User{ID: 1, Name: "alice"}
		user.SetBalance(10000)

		err := user.Debit(10001)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(10000), user.Balance())
	})
}
