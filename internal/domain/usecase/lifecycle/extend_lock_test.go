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

func TestExtendLockDuration(t *testing.T) {
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

	t.Run("Beneficiary extends and pays the extension fee", func(t *testing.T) {
		svc, m := newTestService(t)
		lock := liveLock()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()
		m.uow.EXPECT().GetFeePort(mock.Anything).Return(m.fees).Once()
		m.fees.EXPECT().Charge(mock.Anything, beneficiaryAcc, int64(50)).Return(nil).Once()
		m.repo.EXPECT().UpdateDuration(mock.Anything, assetType, unitID, int64(4100)).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			extended, ok := e.(event.LockDurationExtended)
			return ok && extended.ExtraSecs == 500
		})).Once()

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 500, beneficiaryAcc)

		require.NoError(t, err)
		assert.Equal(t, int64(4100), lock.DurationSecs)
	})

	t.Run("Creator who is not the beneficiary is unauthorized", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(liveLock(), nil).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 500, creatorAccount)

		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
		m.fees.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero extension is rejected before any side effect", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 0, beneficiaryAcc)

		assert.Equal(t, errs.ErrInvalidExtension, err)
	})

	t.Run("Negative extension is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.ExtendLockDuration(ctx, assetType, unitID, -500, beneficiaryAcc)

		assert.Equal(t, errs.ErrInvalidExtension, err)
	})

	t.Run("Invalid asset type", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.ExtendLockDuration(ctx, "", unitID, 500, beneficiaryAcc)

		assert.Equal(t, errs.ErrInvalidAssetType, err)
	})

	t.Run("Missing lock", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(nil, errs.ErrLockNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 500, beneficiaryAcc)

		assert.Equal(t, errs.ErrLockNotFound, err)
	})

	t.Run("Fee failure leaves the duration untouched", func(t *testing.T) {
		svc, m := newTestService(t)
		lock := liveLock()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()
		m.uow.EXPECT().GetFeePort(mock.Anything).Return(m.fees).Once()
		m.fees.EXPECT().Charge(mock.Anything, beneficiaryAcc, int64(50)).Return(errs.ErrFeeChargeFailed).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 500, beneficiaryAcc)

		assert.Equal(t, errs.ErrFeeChargeFailed, err)
		assert.Equal(t, int64(3600), lock.DurationSecs)
		m.repo.AssertNotCalled(t, "UpdateDuration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Extension works while paused", func(t *testing.T) {
		svc, m := newTestService(t)
		m.gate.paused = true
		lock := liveLock()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetLockRepository(mock.Anything).Return(m.repo).Once()
		m.repo.EXPECT().Get(mock.Anything, assetType, unitID).Return(lock, nil).Once()
		m.uow.EXPECT().GetFeePort(mock.Anything).Return(m.fees).Once()
		m.fees.EXPECT().Charge(mock.Anything, beneficiaryAcc, int64(50)).Return(nil).Once()
		m.repo.EXPECT().UpdateDuration(mock.Anything, assetType, unitID, int64(4100)).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := svc.ExtendLockDuration(ctx, assetType, unitID, 500, beneficiaryAcc)

		require.NoError(t, err)
	})
}
