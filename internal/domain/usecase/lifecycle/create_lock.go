package lifecycle

import (
	"context"
	"errors"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/domain/event"
	"github.com/sina-mohseni/nftvault/internal/domain/port/usecase"
)

// CreateLock takes one asset unit into custody under a new lock.
//
// Preconditions, first failure wins: system not paused; arguments valid and
// duration above the floor; asset eligible; no live lock for the pair.
// Side effects in fixed order inside one transaction: transfer the unit
// caller → custody, charge the creation fee (zero for exempt callers),
// write the lock record. Any failure rolls everything back.
func (s *Service) CreateLock(ctx context.Context, req usecase.CreateLockRequest) (*entity.Lock, error) {
	key := lockKey(req.AssetType, req.UnitID)
	if err := s.calls.acquire(key); err != nil {
		return nil, err
	}
	defer s.calls.release(key)

	if s.gate.IsPaused() {
		return nil, errs.ErrPaused
	}
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}
	if err := s.guard.AssertLockable(ctx, req.AssetType); err != nil {
		return nil, err
	}

	var lock *entity.Lock
	err := s.inTx(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetLockRepository(txCtx)

		existing, err := repo.Get(txCtx, req.AssetType, req.UnitID)
		if err != nil && !errors.Is(err, errs.ErrLockNotFound) {
			return err
		}
		if existing.Exists() {
			return errs.NewLockError(string(req.AssetType), int64(req.UnitID), "create", errs.ErrLockAlreadyExists)
		}

		transfer := s.uow.GetAssetTransferPort(txCtx)
		if err := transfer.Transfer(txCtx, req.AssetType, req.UnitID, req.Caller, s.custodyAcct); err != nil {
			return err
		}

		fees := s.uow.GetFeePort(txCtx)
		if err := fees.Charge(txCtx, req.Caller, s.gate.CreationFee()); err != nil {
			return err
		}

		lock, err = entity.NewLock(req.AssetType, req.UnitID, req.Caller, req.Beneficiary, req.DurationSecs, s.timeProvider.Now())
		if err != nil {
			return err
		}
		return repo.Create(txCtx, lock)
	})
	if err != nil {
		s.logger.Error("Lock creation failed", map[string]any{
			"asset_type": string(req.AssetType),
			"unit_id":    int64(req.UnitID),
			"caller":     uint64(req.Caller),
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Lock created", map[string]any{
		"asset_type":    string(req.AssetType),
		"unit_id":       int64(req.UnitID),
		"creator":       uint64(req.Caller),
		"beneficiary":   uint64(req.Beneficiary),
		"duration_secs": req.DurationSecs,
	})
	s.events.Emit(ctx, event.LockCreated{
		AssetType:    req.AssetType,
		UnitID:       req.UnitID,
		Creator:      req.Caller,
		Beneficiary:  req.Beneficiary,
		DurationSecs: req.DurationSecs,
	})
	return lock, nil
}
