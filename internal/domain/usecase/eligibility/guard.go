package eligibility

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/custody"
)

// Guard rejects asset types that cannot safely be taken into custody:
// fungible collections, and any collection carrying a fixed, fractional,
// or royalty/fallback fee schedule. It is a pure read over the inspector
// port; it never mutates state, so a rejection can never corrupt the store.
type Guard struct {
	inspector custody.AssetInspector
	logger    coreport.Logger
}

// NewGuard creates an eligibility guard over the given metadata inspector
func NewGuard(inspector custody.AssetInspector, logger coreport.Logger) *Guard {
	return &Guard{
		inspector: inspector,
		logger:    logger,
	}
}

// AssertLockable fails with ErrIneligibleAsset unless the asset type is a
// unique-unit kind with an empty fee schedule. It runs at association and
// creation time, and again defensively at withdrawal in case the metadata
// changed while the asset was in custody.
func (g *Guard) AssertLockable(ctx context.Context, assetType entity.AssetType) error {
	if !assetType.IsValid() {
		return errs.ErrInvalidAssetType
	}

	info, err := g.inspector.GetAssetInfo(ctx, assetType)
	if err != nil {
		return err
	}

	if !info.IsUnique() {
		g.logger.Warn("Asset rejected: not a unique-unit kind", map[string]any{
			"asset_type": string(assetType),
			"kind":       string(info.Kind),
		})
		return errs.ErrIneligibleAsset
	}

	if info.HasCustomFees() {
		g.logger.Warn("Asset rejected: carries a custom fee schedule", map[string]any{
			"asset_type":  string(assetType),
			"fee_entries": len(info.FeeSchedule),
		})
		return errs.ErrIneligibleAsset
	}

	return nil
}
