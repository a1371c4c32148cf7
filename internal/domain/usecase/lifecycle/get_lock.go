package lifecycle

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
)

// GetLockedAsset returns the live lock for the asset unit. Read-only: it
// never takes the call guard, is never blocked by pause, and charges no
// fee.
func (s *Service) GetLockedAsset(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) (*entity.Lock, error) {
	if err := validateLockRef(assetType, unitID); err != nil {
		return nil, err
	}

	repo := s.uow.GetLockRepository(ctx)
	return repo.Get(ctx, assetType, unitID)
}
