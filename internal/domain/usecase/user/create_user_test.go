package user

import (
	"context"
	"testing"
	"time"

	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	coremocks "github.com/avoronova/balance-ledger/mocks/port/core"
	persistencemocks "github.com/avoronova/balance-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates user with zero balance", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByName(mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		created, err := useCase.CreateUser(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", created.Name)
		assert.Equal(t, int64(0), created.Balance())
		assert.Equal(t, fixedTime, created.CreatedAt)
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		created, err := useCase.CreateUser(ctx, "")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidUserName)
	})

	t.Run("Duplicate name rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := newTestUser(t, "alice", fixedTime)
		mockRepo.EXPECT().GetByName(mock.Anything, "alice").Return(existing, nil).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		created, err := useCase.CreateUser(ctx, "alice")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrDuplicateName)
	})

	t.Run("Name lookup failure propagates", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByName(mock.Anything, "alice").
			Return(nil, errs.ErrStorage).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		created, err := useCase.CreateUser(ctx, "alice")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Insert failure is logged and propagated", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByName(mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrStorage).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		created, err := useCase.CreateUser(ctx, "alice")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
