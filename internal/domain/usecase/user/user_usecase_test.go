package user

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

func newTestUser(t *testing.T, name string, createdAt time.Time) *entity.User {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Once()

	user, err := entity.NewUser(name, mockTime)
	require.NoError(t, err)
	user.ID = 1
	return user
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns stored user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := newTestUser(t, "alice", fixedTime)
		stored.SetBalance(10050)
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(stored, nil).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		found, err := useCase.GetUser(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "alice", found.Name)
		assert.Equal(t, "100.50", found.FormattedBalance())
	})

	t.Run("Zero ID rejected without store access", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		found, err := useCase.GetUser(ctx, 0)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Unknown user yields not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).
			Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		found, err := useCase.GetUser(ctx, 99)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Storage failure is logged", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(nil, errs.ErrStorage).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		found, err := useCase.GetUser(ctx, 1)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Existing user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(newTestUser(t, "alice", fixedTime), nil).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		exists, err := useCase.UserExists(ctx, 1)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Missing user is not an error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).
			Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		exists, err := useCase.UserExists(ctx, 99)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Storage failure propagates", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(nil, errs.ErrStorage).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		exists, err := useCase.UserExists(ctx, 1)

		assert.False(t, exists)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
