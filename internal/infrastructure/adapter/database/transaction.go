package database

import (
	"context"
	"fmt"

	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/custody"
	"github.com/sina-mohseni/nftvault/internal/domain/port/persistence"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for lifecycle operations.
// The lock repository, the asset ledger, and the fee ledger it hands out
// are all bound to the transaction carried in the context, which is what
// makes each lifecycle operation all-or-nothing: a failed transfer or fee
// charge rolls back every other effect, including the withdraw path's
// record deletion.
type UnitOfWork struct {
	db     *gorm.DB
	policy custody.FeePolicy
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, policy custody.FeePolicy, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		policy: policy,
		logger: logger,
	}
}

// Begin starts a new database transaction with SERIALIZABLE isolation
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Rollback().Error; err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// dbFrom returns the transaction bound to the context, or the base
// connection when the context carries none.
func (u *UnitOfWork) dbFrom(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db
}

// GetLockRepository returns a lock repository bound to the current transaction
func (u *UnitOfWork) GetLockRepository(ctx context.Context) persistence.LockRepository {
	return repository.NewLockRepository(u.dbFrom(ctx), u.logger)
}

// GetAssetTransferPort returns an asset ledger bound to the current transaction
func (u *UnitOfWork) GetAssetTransferPort(ctx context.Context) custody.AssetTransferPort {
	return repository.NewAssetLedger(u.dbFrom(ctx), u.logger)
}

// GetFeePort returns a fee ledger bound to the current transaction
func (u *UnitOfWork) GetFeePort(ctx context.Context) custody.FeePort {
	return repository.NewFeeLedger(u.dbFrom(ctx), u.policy, u.logger)
}
