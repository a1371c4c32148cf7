package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssociateAsset(t *testing.T) {
	ctx := context.Background()
	assetType := entity.AssetType("art.collection")

	t.Run("Eligible asset is associated", func(t *testing.T) {
		svc, m := newTestService(t)

		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().AssociateAsset(mock.Anything, assetType).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			associated, ok := e.(event.AssetAssociated)
			return ok && associated.AssetType == assetType
		})).Once()

		err := svc.AssociateAsset(ctx, assetType, creatorAccount)

		require.NoError(t, err)
	})

	t.Run("Re-association is idempotent", func(t *testing.T) {
		svc, m := newTestService(t)

		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Times(2)
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(2)
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Times(2)
		m.repo.EXPECT().AssociateAsset(mock.Anything, assetType).Return(nil).Times(2)
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Times(2)
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Times(2)

		require.NoError(t, svc.AssociateAsset(ctx, assetType, creatorAccount))
		require.NoError(t, svc.AssociateAsset(ctx, assetType, creatorAccount))
	})

	t.Run("Paused system rejects association", func(t *testing.T) {
		svc, m := newTestService(t)
		m.gate.paused = true

		err := svc.AssociateAsset(ctx, assetType, creatorAccount)

		assert.Equal(t, errs.ErrPaused, err)
	})

	t.Run("Invalid asset type", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.AssociateAsset(ctx, "", creatorAccount)

		assert.Equal(t, errs.ErrInvalidAssetType, err)
	})

	t.Run("Invalid caller", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.AssociateAsset(ctx, assetType, 0)

		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Fungible asset is rejected", func(t *testing.T) {
		svc, m := newTestService(t)

		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(
			&entity.AssetInfo{Type: assetType, Kind: entity.AssetKindFungible}, nil,
		).Once()

		err := svc.AssociateAsset(ctx, assetType, creatorAccount)

		assert.Equal(t, errs.ErrIneligibleAsset, err)
	})
}

func TestGetLockedAsset(t *testing.T) {
	ctx := context.Background()
	assetType := entity.AssetType("art.collection")
	unitID := entity.UnitID(42)

	t.Run("Returns the live lock", func(t *testing.T) {
		svc, m := newTestService(t)
		lock := &entity.Lock{
			AssetType:    assetType,
			UnitID:       unitID,
			Creator:      creatorAccount,
			Beneficiary:  beneficiaryAcc,
			Start:        time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
			DurationSecs: 3600,
		}

		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()

		got, err := svc.GetLockedAsset(ctx, assetType, unitID)

		require.NoError(t, err)
		assert.Equal(t, lock, got)
	})

	t.Run("Missing lock", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(nil, errs.ErrLockNotFound).Once()

		got, err := svc.GetLockedAsset(ctx, assetType, unitID)

		assert.Nil(t, got)
		assert.Equal(t, errs.ErrLockNotFound, err)
	})

	t.Run("Invalid reference", func(t *testing.T) {
		svc, _ := newTestService(t)

		got, err := svc.GetLockedAsset(ctx, "", unitID)

		assert.Nil(t, got)
		assert.Equal(t, errs.ErrInvalidAssetType, err)
	})
}
