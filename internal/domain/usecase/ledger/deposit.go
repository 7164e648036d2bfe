package ledger

import (
	"context"
	"errors"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
)

// Deposit increases the user's balance by amount and records a deposit
// transaction. The balance write and the record insert commit together;
// any failure rolls both back.
func (s *Service) Deposit(ctx context.Context, userID uint64, amount string) (string, error) {
	cents, err := validateAmount(amount)
	if err != nil {
		return "", err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return "", err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	user, err := users.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Deposit to non-existent user", map[string]any{
				"user_id": userID,
			})
		}
		return "", err
	}

	user.Credit(cents)
	if err := users.UpdateBalance(txCtx, user.ID, user.Balance()); err != nil {
		return "", err
	}

	record, err := entity.NewTransaction(user.ID, cents, entity.TypeDeposit, s.timeProvider)
	if err != nil {
		return "", err
	}
	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, record); err != nil {
		return "", err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return "", err
	}
	committed = true

	s.logger.Info("Deposit completed", map[string]any{
		"user_id":     userID,
		"amount":      entity.CentsToString(cents),
		"new_balance": user.FormattedBalance(),
	})

	return user.FormattedBalance(), nil
}
