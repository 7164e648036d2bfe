package ledger

import (
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/domain/port/persistence"
	"github.com/avoronova/balance-ledger/internal/domain/port/usecase"
)

// Service orchestrates deposit, withdraw and transfer as atomic sequences of
// validate -> mutate -> record -> commit, plus the history read. Every
// mutation runs inside a unit of work with the affected user rows locked, so
// sufficiency checks always see the authoritative balance.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
