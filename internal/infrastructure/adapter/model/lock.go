package model

import (
	"time"
)

// Lock is the persistence model for one custody lock. The composite primary
// key (asset_type, unit_id) enforces the at-most-one-live-lock invariant at
// the database level.
type Lock struct {
	AssetType    string    `gorm:"primaryKey;size:128;not null"`
	UnitID       int64     `gorm:"primaryKey;not null;check:unit_id > 0"`
	Creator      uint64    `gorm:"not null"`
	Beneficiary  uint64    `gorm:"not null"`
	StartAt      time.Time `gorm:"not null"`
	DurationSecs int64     `gorm:"not null;check:duration_secs > 0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Lock
func (Lock) TableName() string {
	return "locks"
}
