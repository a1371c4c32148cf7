package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWithdrawUnlockedNFT(t *testing.T) {
	ctx := context.Background()
	assetType := entity.AssetType("art.collection")
	unitID := entity.UnitID(42)
	start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	liveLock := func() *entity.Lock {
		return &entity.Lock{
			AssetType:    assetType,
			UnitID:       unitID,
			Creator:      creatorAccount,
			Beneficiary:  beneficiaryAcc,
			Start:        start,
			DurationSecs: 3600,
		}
	}

	t.Run("Expired lock releases to the beneficiary", func(t *testing.T) {
		svc, m := newTestService(t)
		lock := liveLock()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(3601 * time.Second)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			withdrawn, ok := e.(event.UnlockedAssetWithdrawn)
			return ok && withdrawn.AssetType == assetType && withdrawn.UnitID == unitID
		})).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, creatorAccount)

		require.NoError(t, err)
	})

	t.Run("Any caller may release, asset still goes to the beneficiary", func(t *testing.T) {
		svc, m := newTestService(t)
		stranger := entity.AccountID(777)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, stranger)

		require.NoError(t, err)
	})

	t.Run("Premature withdrawal fails with the release threshold", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(1000 * time.Second)).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		assert.True(t, errors.Is(err, errs.ErrNotYetExpired))

		var notYet *errs.NotYetExpiredError
		require.True(t, errors.As(err, &notYet))
		assert.Equal(t, start.Add(3600*time.Second).Unix(), notYet.ReleaseAt)
		m.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Withdrawal exactly at the release instant succeeds", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(3600 * time.Second)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		require.NoError(t, err)
	})

	t.Run("Missing lock", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(nil, errs.ErrLockNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		assert.Equal(t, errs.ErrLockNotFound, err)
	})

	t.Run("Metadata grown a fee schedule blocks the release", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(
			&entity.AssetInfo{
				Type: assetType,
				Kind: entity.AssetKindUnique,
				FeeSchedule: []entity.FeeScheduleEntry{
					{Kind: entity.FeeScheduleRoyalty, Collector: 7, Amount: 10},
				},
			}, nil,
		).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		assert.Equal(t, errs.ErrIneligibleAsset, err)
		m.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Transfer failure rolls the record deletion back", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).Return(errs.ErrTransferFailed).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		assert.Equal(t, errs.ErrTransferFailed, err)
	})

	t.Run("Withdrawal works while paused", func(t *testing.T) {
		svc, m := newTestService(t)
		m.gate.paused = true

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.timePr.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()
		m.inspector.EXPECT().GetAssetInfo(mock.Anything, assetType).Return(uniqueAssetInfo(assetType), nil).Once()
		m.repo.EXPECT().Delete(mock.Anything, assetType, unitID).Return(nil).Once()
		m.uow.EXPECT().GetAssetTransferPort(mock.Anything).Return(m.transfer).Once()
		m.transfer.EXPECT().Transfer(mock.Anything, assetType, unitID, custodyAccount, beneficiaryAcc).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.WithdrawUnlockedNFT(ctx, assetType, unitID, beneficiaryAcc)

		require.NoError(t, err)
	})

	t.Run("Invalid unit ID", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.WithdrawUnlockedNFT(ctx, assetType, 0, beneficiaryAcc)

		assert.Equal(t, errs.ErrInvalidUnitID, err)
	})
}
