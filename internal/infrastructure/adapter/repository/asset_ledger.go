package repository

import (
	"context"
	"fmt"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AssetLedger implements the AssetTransferPort against the in-process
// asset_units table. A transfer is one guarded UPDATE: it succeeds only if
// the unit exists and is currently owned by the source account, so the move
// is atomic by construction.
type AssetLedger struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAssetLedger creates a new AssetLedger instance
func NewAssetLedger(db *gorm.DB, logger coreport.Logger) *AssetLedger {
	return &AssetLedger{
		db:     db,
		logger: logger,
	}
}

// Transfer moves the unit from one account to another
func (l *AssetLedger) Transfer(ctx context.Context, assetType entity.AssetType, unitID entity.UnitID, from, to entity.AccountID) error {
	result := l.db.WithContext(ctx).
		Model(&model.AssetUnit{}).
		Where("asset_type = ? AND unit_id = ? AND owner = ?", string(assetType), int64(unitID), uint64(from)).
		Update("owner", uint64(to))
	if result.Error != nil {
		l.logger.Error("Database error during asset transfer", map[string]any{
			"asset_type": string(assetType),
			"unit_id":    int64(unitID),
			"from":       uint64(from),
			"to":         uint64(to),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		l.logger.Warn("Asset transfer rejected", map[string]any{
			"asset_type": string(assetType),
			"unit_id":    int64(unitID),
			"from":       uint64(from),
			"to":         uint64(to),
		})
		return errs.ErrTransferFailed
	}

	l.logger.Debug("Asset unit transferred", map[string]any{
		"asset_type": string(assetType),
		"unit_id":    int64(unitID),
		"from":       uint64(from),
		"to":         uint64(to),
	})
	return nil
}
