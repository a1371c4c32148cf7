package lifecycle

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
)

// ExtendLockDuration grows a live lock's duration by extraSecs.
//
// Only the stored beneficiary may extend; the creator has no special right
// unless they are also the beneficiary. The extension fee charge and the
// duration write share one transaction, so a fee failure leaves the
// duration untouched. Extension stays available while paused.
func (s *Service) ExtendLockDuration(
	ctx context.Context,
	assetType entity.AssetType,
	unitID entity.UnitID,
	extraSecs int64,
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
	if extraSecs <= 0 {
		return errs.ErrInvalidExtension
	}

	err := s.inTx(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetLockRepository(txCtx)

		lock, err := repo.Get(txCtx, assetType, unitID)
		if err != nil {
			return err
		}
		if caller != lock.Beneficiary {
			return errs.NewLockError(string(assetType), int64(unitID), "extend", errs.ErrUnauthorized)
		}

		fees := s.uow.GetFeePort(txCtx)
		if err := fees.Charge(txCtx, caller, s.gate.ExtensionFee()); err != nil {
			return err
		}

		if err := lock.Extend(extraSecs); err != nil {
			return err
		}
		return repo.UpdateDuration(txCtx, assetType, unitID, lock.DurationSecs)
	})
	if err != nil {
		s.logger.Error("Lock extension failed", map[string]any{
			"asset_type": string(assetType),
			"unit_id":    int64(unitID),
			"caller":     uint64(caller),
			"extra_secs": extraSecs,
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("Lock duration extended", map[string]any{
		"asset_type": string(assetType),
		"unit_id":    int64(unitID),
		"extra_secs": extraSecs,
	})
	s.events.Emit(ctx, event.LockDurationExtended{
		AssetType: assetType,
		UnitID:    unitID,
		ExtraSecs: extraSecs,
	})
	return nil
}
