package model

import (
	"time"
)

// Account is the persistence model of the fee ledger. FeeBalance is stored
// in whole fee-units and must never go negative.
type Account struct {
	ID         uint64    `gorm:"primaryKey;not null"`
	FeeBalance int64     `gorm:"not null;default:0;check:fee_balance >= 0"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
