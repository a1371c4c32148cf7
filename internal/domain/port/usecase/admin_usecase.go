package usecase

import (
	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// AdminUseCase defines the administrator-only configuration surface:
// the pause switch, the fixed fee amounts, and the fee-exemption set.
type AdminUseCase interface {
	// Pause blocks association and lock creation. Extension and withdrawal
	// stay available so existing beneficiaries are never trapped.
	Pause(caller entity.AccountID) error

	// Unpause lifts the pause switch
	Unpause(caller entity.AccountID) error

	// IsPaused reports the current pause state
	IsPaused() bool

	// SetFees replaces the fixed creation and extension fees. Each amount
	// is checked against the fee ceiling here, at configuration time.
	SetFees(caller entity.AccountID, creationFee, extensionFee int64) error

	// AddFeeExemption adds an account to the fee-exemption set
	AddFeeExemption(caller, account entity.AccountID) error

	// RemoveFeeExemption removes an account from the fee-exemption set
	RemoveFeeExemption(caller, account entity.AccountID) error
}
