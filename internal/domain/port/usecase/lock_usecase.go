package usecase

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// CreateLockRequest carries the inputs of a create-lock call.
type CreateLockRequest struct {
	AssetType    entity.AssetType
	UnitID       entity.UnitID
	Beneficiary  entity.AccountID
	DurationSecs int64
	Caller       entity.AccountID
}

// LockUseCase defines the custody operations exposed to callers.
type LockUseCase interface {
	// AssociateAsset registers an eligible asset type with the service.
	// Requires the system not to be paused. No fee.
	AssociateAsset(ctx context.Context, assetType entity.AssetType, caller entity.AccountID) error

	// CreateLock takes one asset unit into custody for the beneficiary.
	// Charges the fixed creation fee unless the caller is exempt.
	CreateLock(ctx context.Context, req CreateLockRequest) (*entity.Lock, error)

	// ExtendLockDuration grows a live lock's duration. Beneficiary only.
	// Charges the fixed extension fee unless the caller is exempt.
	ExtendLockDuration(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, extraSecs int64, caller entity.AccountID) error

	// WithdrawUnlockedNFT releases an expired lock to its beneficiary.
	// Anyone may call; the asset always moves to the stored beneficiary.
	WithdrawUnlockedNFT(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, caller entity.AccountID) error

	// GetLockedAsset returns the live lock for the asset unit
	GetLockedAsset(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) (*entity.Lock, error)
}
