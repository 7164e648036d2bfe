package ledger

import (
	"context"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
)

// GetHistory returns all transaction records for the user ordered by
// creation. An existing user with no activity yields an empty slice, not
// an error; an unknown user yields ErrUserNotFound.
func (s *Service) GetHistory(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	records, err := s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read transaction history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return records, nil
}
