package ledger

import (
	"context"
	"errors"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
)

// Withdraw decreases the user's balance by amount and records a withdraw
// transaction. Sufficiency is checked against the row-locked balance, not
// an earlier read, so two concurrent withdrawals can never overdraw the
// account together.
func (s *Service) Withdraw(ctx context.Context, userID uint64, amount string) (string, error) {
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
			s.logger.Warn("Withdrawal from non-existent user", map[string]any{
				"user_id": userID,
			})
		}
		return "", err
	}

	if err := user.Debit(cents); err != nil {
		detailed := errs.NewInsufficientFundsError(
			user.ID,
			entity.CentsToString(cents),
			user.FormattedBalance(),
		)
		s.logger.Warn("Withdrawal rejected", map[string]any{
			"user_id": userID,
			"amount":  entity.CentsToString(cents),
			"balance": user.FormattedBalance(),
		})
		return "", detailed
	}

	if err := users.UpdateBalance(txCtx, user.ID, user.Balance()); err != nil {
		return "", err
	}

	record, err := entity.NewTransaction(user.ID, cents, entity.TypeWithdraw, s.timeProvider)
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

	s.logger.Info("Withdrawal completed", map[string]any{
		"user_id":     userID,
		"amount":      entity.CentsToString(cents),
		"new_balance": user.FormattedBalance(),
	})

	return user.FormattedBalance(), nil
}
