package event

import (
	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// Event names as emitted in notifications and metrics labels.
const (
	NameAssetAssociated        = "AssetAssociated"
	NameLockCreated            = "LockCreated"
	NameLockDurationExtended   = "LockDurationExtended"
	NameUnlockedAssetWithdrawn = "UnlockedAssetWithdrawn"
)

// Event is a notification produced by a successful custody operation.
type Event interface {
	// Name returns the notification name
	Name() string
	// Fields returns the notification payload for structured emission
	Fields() map[string]any
}

// AssetAssociated signals that an asset type was registered with custody.
type AssetAssociated struct {
	AssetType entity.AssetType
}

func (e AssetAssociated) Name() string { return NameAssetAssociated }

func (e AssetAssociated) Fields() map[string]any {
	return map[string]any{
		"asset_type": string(e.AssetType),
	}
}

// LockCreated signals a new lock took custody of an asset unit.
type LockCreated struct {
	AssetType    entity.AssetType
	UnitID       entity.UnitID
	Creator      entity.AccountID
	Beneficiary  entity.AccountID
	DurationSecs int64
}

func (e LockCreated) Name() string { return NameLockCreated }

func (e LockCreated) Fields() map[string]any {
	return map[string]any{
		"asset_type":    string(e.AssetType),
		"unit_id":       int64(e.UnitID),
		"creator":       uint64(e.Creator),
		"beneficiary":   uint64(e.Beneficiary),
		"duration_secs": e.DurationSecs,
	}
}

// LockDurationExtended signals a beneficiary extended a live lock.
type LockDurationExtended struct {
	AssetType entity.AssetType
	UnitID    entity.UnitID
	ExtraSecs int64
}

func (e LockDurationExtended) Name() string { return NameLockDurationExtended }

func (e LockDurationExtended) Fields() map[string]any {
	return map[string]any{
		"asset_type": string(e.AssetType),
		"unit_id":    int64(e.UnitID),
		"extra_secs": e.ExtraSecs,
	}
}

// UnlockedAssetWithdrawn signals an expired lock was released to its
// beneficiary. Actor is whoever triggered the release.
type UnlockedAssetWithdrawn struct {
	AssetType entity.AssetType
	UnitID    entity.UnitID
	Actor     entity.AccountID
}

func (e UnlockedAssetWithdrawn) Name() string { return NameUnlockedAssetWithdrawn }

func (e UnlockedAssetWithdrawn) Fields() map[string]any {
	return map[string]any{
		"asset_type": string(e.AssetType),
		"unit_id":    int64(e.UnitID),
		"actor":      uint64(e.Actor),
	}
}
