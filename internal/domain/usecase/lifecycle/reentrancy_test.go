package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCallGuard(t *testing.T) {
	t.Run("Acquire then release allows re-acquisition", func(t *testing.T) {
		guard := newCallGuard()

		require.NoError(t, guard.acquire("art.collection/42"))
		guard.release("art.collection/42")
		require.NoError(t, guard.acquire("art.collection/42"))
	})

	t.Run("Double acquire is rejected", func(t *testing.T) {
		guard := newCallGuard()

		require.NoError(t, guard.acquire("art.collection/42"))
		assert.Equal(t, errs.ErrReentrancyRejected, guard.acquire("art.collection/42"))
	})

	t.Run("Distinct keys do not contend", func(t *testing.T) {
		guard := newCallGuard()

		require.NoError(t, guard.acquire("art.collection/42"))
		require.NoError(t, guard.acquire("art.collection/43"))
		require.NoError(t, guard.acquire("other.collection/42"))
	})

	t.Run("Releasing an unheld key is safe", func(t *testing.T) {
		guard := newCallGuard()
		guard.release("never.held/1")
	})
}

func TestLockKeys(t *testing.T) {
	assert.Equal(t, "art.collection/42", lockKey("art.collection", 42))
	assert.Equal(t, "art.collection/*", assetKey("art.collection"))
	assert.NotEqual(t, lockKey("art.collection", 42), assetKey("art.collection"))
}

func TestReentrantCallIsRejected(t *testing.T) {
	ctx := context.Background()
	assetType := entity.AssetType("art.collection")
	unitID := entity.UnitID(42)
	start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Nested withdraw during the outbound transfer", func(t *testing.T) {
		svc, m := newTestService(t)
		lock := &entity.Lock{
			AssetType:    assetType,
			UnitID:       unitID,
			Creator:      creatorAccount,
			Beneficiary:  beneficiaryAcc,
			Start:        start,
			DurationSecs: 3600,
		}

		var nestedErr error

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).RunAndReturn(
			func(context.Context, entity.AssetType, entity.UnitID, entity.AccountID, entity.AccountID) error {
				// A malicious transfer hook calling back into the service.
				nestedErr = svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)
				return nil
			},
		).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		require.NoError(t, err)
		assert.Equal(t, errs.ErrReentrancyRejected, nestedErr)
	})

	t.Run("Nested create during the inbound transfer", func(t *testing.T) {
		svc, m := newTestService(t)
		req := validCreateRequest()

		var nestedErr error

		m.inspector.EXPECT().GetAssetInfo(mock.Anything, req.AssetType).Return(uniqueAssetInfo(req.AssetType), nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, req.AssetType, req.UnitID).Return(nil, errs.ErrLockNotFound).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, req.AssetType, req.UnitID, req.Caller, custodyAccount).RunAndReturn(
			func(context.Context, entity.AssetType, entity.UnitID, entity.AccountID, entity.AccountID) error {
				_, nestedErr = svc.CreateLock(ctx, req)
				return nil
			},
		).Once()
		m.uow.EXPECT().GetFeePort(mock.Anything).Return(m.fees).Once()
		m.fees.EXPECT().Charge(mock.Anything, req.Caller, int64(100)).Return(nil).Once()
		m.timePr.EXPECT().Now().Return(start).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		_, err := svc.CreateLock(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, errs.ErrReentrancyRejected, nestedErr)
	})

	t.Run("Operations on a different unit proceed during a held call", func(t *testing.T) {
		svc, m := newTestService(t)
		otherUnit := entity.UnitID(43)
		otherLock := &entity.Lock{
			AssetType:    assetType,
			UnitID:       otherUnit,
			Creator:      creatorAccount,
			Beneficiary:  beneficiaryAcc,
			Start:        start,
			DurationSecs: 3600,
		}

		var nestedErr error
		var nestedLock *entity.Lock

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Times(2)
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(&entity.Lock{
			AssetType:    assetType,
			UnitID:       unitID,
			Creator:      creatorAccount,
			Beneficiary:  beneficiaryAcc,
			Start:        start,
			DurationSecs: 3600,
		}, nil).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, otherUnit).Return(otherLock, nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).RunAndReturn(
			func(context.Context, entity.AssetType, entity.UnitID, entity.AccountID, entity.AccountID) error {
				// Read of a different unit is not blocked by the held key.
				nestedLock, nestedErr = svc.GetLockedAsset(ctx, assetType, otherUnit)
				return nil
			},
		).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		require.NoError(t, err)
		require.NoError(t, nestedErr)
		assert.Equal(t, otherLock, nestedLock)
	})
}
