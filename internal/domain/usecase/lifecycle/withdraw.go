package lifecycle

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
)

// WithdrawUnlockedNFT releases an expired lock. Anyone may trigger the
// release; the unit always moves to the stored beneficiary and no fee is
// charged. Withdrawal stays available while paused.
//
// The lock record is deleted before the outbound transfer
// (checks-effects-interactions), so a re-entrant call during the transfer
// observes "no lock". Both steps share one transaction: a transfer failure
// rolls the deletion back, restoring the record instead of stranding the
// unit in custody without a claim.
func (s *Service) WithdrawUnlockedNFT(
	ctx context.Context,
	assetType entity.AssetType,
	unitID entity.UnitID,
	caller entity.AccountID,
) error {
	key := lockKey(assetType, unitID)
	if err := s.calls.acquire(key); err != nil {
		return err
	}
	defer s.calls.release(key)

	if err := validateLockRef(assetType, unitID); err != nil {
		return err
	}

	var beneficiary entity.AccountID
	err := s.inTx(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetLockRepository(txCtx)

		lock, err := repo.Get(txCtx, assetType, unitID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if !lock.IsReleasable(now) {
			return errs.NewNotYetExpiredError(
				string(assetType), int64(unitID),
				lock.ReleaseAt().Unix(), now.Unix(),
			)
		}

		// Metadata can change while the unit sits in custody; re-check so
		// an asset that grew a royalty schedule is never released through
		// the normal path.
		if err := s.guard.AssertLockable(txCtx, assetType); err != nil {
			return err
		}

		beneficiary = lock.Beneficiary
		if err := repo.Delete(txCtx, assetType, unitID); err != nil {
			return err
		}

		transfer := s.uow.GetAssetTransferPort(txCtx)
		return transfer.Transfer(txCtx, assetType, unitID, s.custodyAcct, beneficiary)
	})
	if err != nil {
		s.logger.Error("Lock withdrawal failed", map[string]any{
			"asset_type": string(assetType),
			"unit_id":    int64(unitID),
			"caller":     uint64(caller),
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("Unlocked asset withdrawn", map[string]any{
		"asset_type":  string(assetType),
		"unit_id":     int64(unitID),
		"actor":       uint64(caller),
		"beneficiary": uint64(beneficiary),
	})
	s.events.Emit(ctx, event.UnlockedAssetWithdrawn{
		AssetType: assetType,
		UnitID:    unitID,
		Actor:     caller,
	})
	return nil
}
