package lifecycle

import (
	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/port/usecase"
)

// validateCreateRequest checks every create-lock argument. Checks run in a
// fixed order and the first failure wins.
func validateCreateRequest(req usecase.CreateLockRequest) error {
	if !req.AssetType.IsValid() {
		return errs.ErrInvalidAssetType
	}
	if !req.Beneficiary.IsValid() {
		return errs.ErrInvalidBeneficiary
	}
	if !req.UnitID.IsValid() {
		return errs.ErrInvalidUnitID
	}
	if req.DurationSecs <= entity.MinLockDurationSecs {
		return errs.ErrDurationTooShort
	}
	if req.DurationSecs > entity.MaxLockDurationSecs {
		return errs.ErrDurationTooLong
	}
	if !req.Caller.IsValid() {
		return errs.ErrInvalidAccountID
	}
	return nil
}

// validateLockRef checks the arguments every existing-lock operation takes
func validateLockRef(assetType entity.AssetType, unitID entity.UnitID) error {
	if !assetType.IsValid() {
		return errs.ErrInvalidAssetType
	}
	if !unitID.IsValid() {
		return errs.ErrInvalidUnitID
	}
	return nil
}
