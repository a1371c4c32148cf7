package persistence

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// LockRepository is the durable mapping from (assetType, unitID) to Lock
// record, the single source of truth for lock existence and state. Only the
// lock lifecycle writes through it.
type LockRepository interface {
	// Get retrieves the live lock for the asset unit
	//
	// Possible errors:
	// - ErrLockNotFound: if no live lock exists for the pair
	// - ErrDatabaseConnection: if the store is unreachable
	Get(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) (*entity.Lock, error)

	// Create writes a new lock record
	//
	// Possible errors:
	// - ErrLockAlreadyExists: if a live lock already holds the pair
	// - ErrDatabaseConnection: if the store is unreachable
	Create(ctx context.Context, lock *entity.Lock) error

	// UpdateDuration persists a grown duration for a live lock
	//
	// Possible errors:
	// - ErrLockNotFound: if no live lock exists for the pair
	// - ErrDatabaseConnection: if the store is unreachable
	UpdateDuration(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, durationSecs int64) error

	// Delete removes the lock record. Deleting is the only way a lock is
	// destroyed; withdrawal issues it before the outbound transfer.
	//
	// Possible errors:
	// - ErrLockNotFound: if no live lock exists for the pair
	// - ErrDatabaseConnection: if the store is unreachable
	Delete(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) error

	// AssociateAsset registers an asset type with the custody service.
	// Registering an already associated type is a no-op.
	AssociateAsset(ctx context.Context, assetType entity.AssetType) error

	// IsAssociated reports whether the asset type has been registered
	IsAssociated(ctx context.Context, assetType entity.AssetType) (bool, error)
}
