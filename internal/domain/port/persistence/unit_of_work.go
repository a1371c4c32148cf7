package persistence

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/port/custody"
)

// UnitOfWork coordinates the side effects of one lifecycle operation so the
// whole call is atomic: the asset transfer, the fee charge, and the lock
// record write either all apply or none do.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetLockRepository returns a lock repository bound to the current transaction
	GetLockRepository(ctx context.Context) LockRepository

	// GetAssetTransferPort returns an asset transfer port bound to the current transaction
	GetAssetTransferPort(ctx context.Context) custody.AssetTransferPort

	// GetFeePort returns a fee port bound to the current transaction
	GetFeePort(ctx context.Context) custody.FeePort
}
