package custody

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// FeePolicy is the process-wide fee configuration read by the FeePort on
// every charge. It is mutable only through the administrator gate.
type FeePolicy interface {
	// CreationFee returns the fixed fee charged when a lock is created
	CreationFee() int64
	// ExtensionFee returns the fixed fee charged when a lock is extended
	ExtensionFee() int64
	// IsExempt reports whether the account bypasses fee charges
	IsExempt(account entity.AccountID) bool
}

// FeePort charges a fixed fee amount from an account, honoring the
// exemption set of the configured FeePolicy. A charge either fully succeeds
// or fully fails.
type FeePort interface {
	// Charge deducts amount fee-units from the payer. Exempt payers are
	// charged zero and the call succeeds without touching their balance.
	//
	// Possible errors:
	// - ErrFeeChargeFailed: if the payer cannot cover the amount
	// - ErrDatabaseConnection: if the backing store is unreachable
	Charge(ctx context.Context, payer entity.AccountID, amount int64) error
}
