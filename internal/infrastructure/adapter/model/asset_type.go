package model

import (
	"time"
)

// AssetType is the persistence model for asset collection metadata.
// Associated tracks whether the type has been registered with custody.
type AssetType struct {
	Type       string    `gorm:"primaryKey;size:128;not null"`
	Kind       string    `gorm:"not null"`
	Associated bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for AssetType
func (AssetType) TableName() string {
	return "asset_types"
}

// AssetFeeEntry is one custom fee schedule entry attached to an asset type.
// The eligibility check treats any entry as disqualifying.
type AssetFeeEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AssetType string    `gorm:"size:128;not null;index"`
	Kind      string    `gorm:"not null"`
	Collector uint64    `gorm:"not null"`
	Amount    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AssetFeeEntry
func (AssetFeeEntry) TableName() string {
	return "asset_fee_entries"
}
