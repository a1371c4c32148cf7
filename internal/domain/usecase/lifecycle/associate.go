package lifecycle

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
)

// AssociateAsset registers an asset type with the custody service after the
// eligibility screen. Registering an already associated type is idempotent.
// No fee is charged.
func (s *Service) AssociateAsset(ctx context.Context, assetType entity.AssetType, caller entity.AccountID) error {
	key := assetKey(assetType)
	if err := s.calls.acquire(key); err != nil {
		return err
	}
	defer s.calls.release(key)

	if s.gate.IsPaused() {
		return errs.ErrPaused
	}
	if !assetType.IsValid() {
		return errs.ErrInvalidAssetType
	}
	if !caller.IsValid() {
		return errs.ErrInvalidAccountID
	}
	if err := s.guard.AssertLockable(ctx, assetType); err != nil {
		return err
	}

	err := s.inTx(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetLockRepository(txCtx)
		return repo.AssociateAsset(txCtx, assetType)
	})
	if err != nil {
		s.logger.Error("Asset association failed", map[string]any{
			"asset_type": string(assetType),
			"caller":     uint64(caller),
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("Asset associated", map[string]any{
		"asset_type": string(assetType),
		"caller":     uint64(caller),
	})
	s.events.Emit(ctx, event.AssetAssociated{AssetType: assetType})
	return nil
}
