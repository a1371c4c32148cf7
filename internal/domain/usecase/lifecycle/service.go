package lifecycle

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/custody"
	"github.com/sina-mohseni/nftvault/internal/domain/port/notification"
	"github.com/sina-mohseni/nftvault/internal/domain/port/persistence"
	"github.com/sina-mohseni/nftvault/internal/domain/usecase/eligibility"
)

// Gate exposes the configuration reads the lifecycle consults before and
// during mutating operations. The admin gate satisfies it.
type Gate interface {
	// IsPaused reports whether association and creation are blocked
	IsPaused() bool
	custody.FeePolicy
}

// Service orchestrates the lock lifecycle: associate, create, extend,
// withdraw, read. Every transition runs synchronously, holds the call
// guard for its lock key, and applies its side effects through one
// UnitOfWork transaction so the operation is all-or-nothing.
//
// Service holds no lock state across calls; each operation re-reads the
// current record through the transaction-bound repository.
type Service struct {
	uow          persistence.UnitOfWork
	guard        *eligibility.Guard
	gate         Gate
	custodyAcct  entity.AccountID
	timeProvider coreport.TimeProvider
	events       notification.EventSink
	logger       coreport.Logger
	calls        *callGuard
}

// NewService creates the lock lifecycle service. custodyAcct is the account
// that holds every locked unit between creation and withdrawal.
func NewService(
	uow persistence.UnitOfWork,
	guard *eligibility.Guard,
	gate Gate,
	custodyAcct entity.AccountID,
	timeProvider coreport.TimeProvider,
	events notification.EventSink,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		guard:        guard,
		gate:         gate,
		custodyAcct:  custodyAcct,
		timeProvider: timeProvider,
		events:       events,
		logger:       logger,
		calls:        newCallGuard(),
	}
}

// inTx runs fn inside a UnitOfWork transaction, rolling back on any error
// and committing otherwise.
func (s *Service) inTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin transaction", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
