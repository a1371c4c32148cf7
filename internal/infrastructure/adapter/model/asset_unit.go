package model

import (
	"time"
)

// AssetUnit is the persistence model of the in-process asset ledger: one
// row per unique unit, tracking the current owner.
type AssetUnit struct {
	AssetType string    `gorm:"primaryKey;size:128;not null"`
	UnitID    int64     `gorm:"primaryKey;not null"`
	Owner     uint64    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AssetUnit
func (AssetUnit) TableName() string {
	return "asset_units"
}
