package custody

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// AssetTransferPort moves one asset unit between two accounts. The transfer
// either fully succeeds or fully fails; there is no partial state.
//
// Implementations that participate in the UnitOfWork transaction make the
// withdraw path's delete-before-transfer ordering fully recoverable: a
// failed transfer rolls back the record deletion. Implementations outside
// the transaction reintroduce the documented residual risk of an asset left
// in custody without a record.
type AssetTransferPort interface {
	// Transfer moves the unit from one account to another
	//
	// Possible errors:
	// - ErrTransferFailed: if the unit is not owned by from, or the move is rejected
	// - ErrDatabaseConnection: if the backing store is unreachable
	Transfer(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, from, to entity.AccountID) error
}
