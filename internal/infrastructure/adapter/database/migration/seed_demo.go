package migration

import (
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDemoAssets populates the in-process ledgers with a small demo world:
// one eligible collection with a few units and funded accounts. Only wired
// in when the demoSeed config flag is on; meant for local development.
func SeedDemoAssets(db *gorm.DB, logger coreport.Logger) error {
	assetTypes := []model.AssetType{
		{Type: "demo.collection", Kind: "unique"},
		{Type: "demo.royalty-collection", Kind: "unique"},
		{Type: "demo.points", Kind: "fungible"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assetTypes).Error; err != nil {
		return err
	}

	// The royalty collection exists to exercise eligibility rejection.
	royaltyEntry := model.AssetFeeEntry{
		AssetType: "demo.royalty-collection",
		Kind:      "royalty",
		Collector: 900,
		Amount:    5,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&royaltyEntry).Error; err != nil {
		return err
	}

	units := []model.AssetUnit{
		{AssetType: "demo.collection", UnitID: 1, Owner: 101},
		{AssetType: "demo.collection", UnitID: 2, Owner: 101},
		{AssetType: "demo.collection", UnitID: 3, Owner: 102},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&units).Error; err != nil {
		return err
	}

	accounts := []model.Account{
		{ID: 101, FeeBalance: 10_000},
		{ID: 102, FeeBalance: 10_000},
		{ID: 103, FeeBalance: 0},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&accounts).Error; err != nil {
		return err
	}

	logger.Info("Demo assets seeded", map[string]any{
		"asset_types": len(assetTypes),
		"units":       len(units),
		"accounts":    len(accounts),
	})
	return nil
}
