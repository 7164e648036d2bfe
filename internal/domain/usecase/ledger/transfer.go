package ledger

import (
	"context"
	"errors"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
	"github.com/avoronova/balance-ledger/internal/domain/port/persistence"
)

// Transfer moves amount from one user to another. Both balance updates and
// both transaction records (one leg per participant, both typed transfer)
// commit as a single unit; a transfer never partially applies.
func (s *Service) Transfer(ctx context.Context, fromUserID, toUserID uint64, amount string) error {
	cents, err := validateAmount(amount)
	if err != nil {
		return err
	}
	if err := validateDifferentUsers(fromUserID, toUserID); err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	sender, recipient, err := s.lockParticipants(txCtx, users, fromUserID, toUserID)
	if err != nil {
		return err
	}

	if err := sender.Debit(cents); err != nil {
		detailed := errs.NewInsufficientFundsError(
			sender.ID,
			entity.CentsToString(cents),
			sender.FormattedBalance(),
		)
		s.logger.Warn("Transfer rejected", map[string]any{
			"from_user_id": fromUserID,
			"to_user_id":   toUserID,
			"amount":       entity.CentsToString(cents),
			"balance":      sender.FormattedBalance(),
		})
		return detailed
	}
	recipient.Credit(cents)

	if err := users.UpdateBalance(txCtx, sender.ID, sender.Balance()); err != nil {
		return err
	}
	if err := users.UpdateBalance(txCtx, recipient.ID, recipient.Balance()); err != nil {
		return err
	}

	records := s.uow.GetTransactionRepository(txCtx)
	for _, participant := range []uint64{sender.ID, recipient.ID} {
		record, err := entity.NewTransaction(participant, cents, entity.TypeTransfer, s.timeProvider)
		if err != nil {
			return err
		}
		if err := records.Create(txCtx, record); err != nil {
			return err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true

	s.logger.Info("Transfer completed", map[string]any{
		"from_user_id":      fromUserID,
		"to_user_id":        toUserID,
		"amount":            entity.CentsToString(cents),
		"sender_balance":    sender.FormattedBalance(),
		"recipient_balance": recipient.FormattedBalance(),
	})

	return nil
}

// lockParticipants locks both user rows in ascending ID order so that
// concurrent transfers between the same pair cannot deadlock. Missing rows
// map to sender/recipient errors, with the sender error taking precedence
// when both are absent.
func (s *Service) lockParticipants(
	ctx context.Context,
	users persistence.UserRepository,
	fromUserID, toUserID uint64,
) (sender *entity.User, recipient *entity.User, err error) {
	first, second := fromUserID, toUserID
	if toUserID < fromUserID {
		first, second = toUserID, fromUserID
	}

	locked := make(map[uint64]*entity.User, 2)
	for _, id := range []uint64{first, second} {
		user, err := users.GetByIDForUpdate(ctx, id)
		if err != nil {
			if !errors.Is(err, errs.ErrUserNotFound) {
				return nil, nil, err
			}
			if id == fromUserID {
				return nil, nil, errs.ErrSenderNotFound
			}
			// The recipient row is missing; the sender error still wins
			// if the sender turns out to be absent as well.
			if _, senderErr := users.GetByID(ctx, fromUserID); senderErr != nil {
				if errors.Is(senderErr, errs.ErrUserNotFound) {
					return nil, nil, errs.ErrSenderNotFound
				}
				return nil, nil, senderErr
			}
			return nil, nil, errs.ErrRecipientNotFound
		}
		locked[id] = user
	}

	return locked[fromUserID], locked[toUserID], nil
}
