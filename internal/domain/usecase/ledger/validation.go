package ledger

import (
	"fmt"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	errs "github.com/avoronova/balance-ledger/internal/domain/error"
)

// validateAmount parses a decimal string amount and requires it to be
// strictly positive. Evaluated before any store interaction so an invalid
// amount never causes a mutation.
func validateAmount(amount string) (int64, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// validateDifferentUsers rejects transfers where both sides name the same user.
func validateDifferentUsers(fromUserID, toUserID uint64) error {
	if fromUserID == toUserID {
		return errs.ErrSameUserTransfer
	}
	return nil
}
