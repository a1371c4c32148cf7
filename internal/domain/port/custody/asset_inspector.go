package custody

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// AssetInspector is the read-only metadata oracle behind the eligibility
// check. It never mutates anything.
type AssetInspector interface {
	// GetAssetInfo returns the kind and fee schedule of an asset type
	//
	// Possible errors:
	// - ErrIneligibleAsset: if the asset type is unknown to the oracle
	// - ErrDatabaseConnection: if the backing store is unreachable
	GetAssetInfo(ctx context.Context, assetType entity.AssetType) (*entity.AssetInfo, error)
}
