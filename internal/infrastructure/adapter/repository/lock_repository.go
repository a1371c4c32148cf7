package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LockRepository implements the LockRepository port using GORM. The
// composite primary key on (asset_type, unit_id) backs the uniqueness
// invariant at the database level.
type LockRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLockRepository creates a new LockRepository instance
func NewLockRepository(db *gorm.DB, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a lock model to a domain lock
func (r *LockRepository) modelToEntity(m *model.Lock) *entity.Lock {
	return &entity.Lock{
		AssetType:    entity.AssetType(m.AssetType),
		UnitID:       entity.UnitID(m.UnitID),
		Creator:      entity.AccountID(m.Creator),
		Beneficiary:  entity.AccountID(m.Beneficiary),
		Start:        m.StartAt,
		DurationSecs: m.DurationSecs,
	}
}

// handleDatabaseError standardizes database error handling
func (r *LockRepository) handleDatabaseError(operation string, err error, assetType entity.AssetType, unitID entity.UnitID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrLockNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"asset_type": string(assetType),
		"unit_id":    int64(unitID),
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrLockAlreadyExists
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Get retrieves the live lock for the asset unit
func (r *LockRepository) Get(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) (*entity.Lock, error) {
	var lockModel model.Lock
	result := r.db.WithContext(ctx).
		Where("asset_type = ? AND unit_id = ?", string(assetType), int64(unitID)).
		First(&lockModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting lock", result.Error, assetType, unitID)
	}

	// A zero-duration row is "does not exist" by definition.
	if lockModel.DurationSecs <= 0 {
		return nil, errs.ErrLockNotFound
	}

	return r.modelToEntity(&lockModel), nil
}

// Create writes a new lock record. CreatedAt and UpdatedAt are filled by
// gorm through the connection's NowFunc, which carries the injected clock.
func (r *LockRepository) Create(ctx context.Context, lock *entity.Lock) error {
	lockModel := model.Lock{
		AssetType:    string(lock.AssetType),
		UnitID:       int64(lock.UnitID),
		Creator:      uint64(lock.Creator),
		Beneficiary:  uint64(lock.Beneficiary),
		StartAt:      lock.Start,
		DurationSecs: lock.DurationSecs,
	}

	result := r.db.WithContext(ctx).Create(&lockModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating lock", result.Error, lock.AssetType, lock.UnitID)
	}

	r.logger.Debug("Lock record created", map[string]any{
		"asset_type":    string(lock.AssetType),
		"unit_id":       int64(lock.UnitID),
		"duration_secs": lock.DurationSecs,
	})
	return nil
}

// UpdateDuration persists a grown duration for a live lock
func (r *LockRepository) UpdateDuration(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, durationSecs int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Lock{}).
		Where("asset_type = ? AND unit_id = ?", string(assetType), int64(unitID)).
		Update("duration_secs", durationSecs)
	if result.Error != nil {
		return r.handleDatabaseError("updating lock duration", result.Error, assetType, unitID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockNotFound
	}
	return nil
}

// Delete removes the lock record
func (r *LockRepository) Delete(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID) error {
	result := r.db.WithContext(ctx).
		Where("asset_type = ? AND unit_id = ?", string(assetType), int64(unitID)).
		Delete(&model.Lock{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting lock", result.Error, assetType, unitID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockNotFound
	}

	r.logger.Debug("Lock record deleted", map[string]any{
		"asset_type": string(assetType),
		"unit_id":    int64(unitID),
	})
	return nil
}

// AssociateAsset marks the asset type as registered with custody. The
// eligibility screen runs before this, so an unknown type means the
// metadata oracle and the store disagree.
func (r *LockRepository) AssociateAsset(ctx context.Context, assetType entity.AssetType) error {
	result := r.db.WithContext(ctx).
		Model(&model.AssetType{}).
		Where("type = ?", string(assetType)).
		Update("associated", true)
	if result.Error != nil {
		return r.handleDatabaseError("associating asset", result.Error, assetType, 0)
	}
	if result.RowsAffected == 0 {
		return errs.ErrIneligibleAsset
	}
	return nil
}

// IsAssociated reports whether the asset type has been registered
func (r *LockRepository) IsAssociated(ctx context.Context, assetType entity.AssetType) (bool, error) {
	var typeModel model.AssetType
	result := r.db.WithContext(ctx).
		Where("type = ?", string(assetType)).
		First(&typeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, r.handleDatabaseError("checking association", result.Error, assetType, 0)
	}
	return typeModel.Associated, nil
}
