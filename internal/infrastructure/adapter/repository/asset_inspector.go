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

// AssetInspector implements the AssetInspector port over the asset_types
// and asset_fee_entries tables. Read-only.
type AssetInspector struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAssetInspector creates a new AssetInspector instance
func NewAssetInspector(db *gorm.DB, logger coreport.Logger) *AssetInspector {
	return &AssetInspector{
		db:     db,
		logger: logger,
	}
}

// GetAssetInfo returns the kind and fee schedule of an asset type
func (i *AssetInspector) GetAssetInfo(ctx context.Context, assetType entity.AssetType) (*entity.AssetInfo, error) {
	var typeModel model.AssetType
	result := i.db.WithContext(ctx).
		Where("type = ?", string(assetType)).
		First(&typeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			i.logger.Warn("Unknown asset type", map[string]any{
				"asset_type": string(assetType),
			})
			return nil, errs.ErrIneligibleAsset
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	var entryModels []model.AssetFeeEntry
	result = i.db.WithContext(ctx).
		Where("asset_type = ?", string(assetType)).
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	schedule := make([]entity.FeeScheduleEntry, 0, len(entryModels))
	for _, m := range entryModels {
		schedule = append(schedule, entity.FeeScheduleEntry{
			Kind:      entity.FeeScheduleKind(m.Kind),
			Collector: entity.AccountID(m.Collector),
			Amount:    m.Amount,
		})
	}

	return &entity.AssetInfo{
		Type:        assetType,
		Kind:        entity.AssetKind(typeModel.Kind),
		FeeSchedule: schedule,
	}, nil
}
