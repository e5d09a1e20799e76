package model

import (
	"time"
)

// Discount represents the database model for discount codes
type Discount struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement"`
	Code            string     `gorm:"uniqueIndex;not null;size:64"`
	DiscountPercent int64      `gorm:"not null;check:discount_percent >= 1 AND discount_percent <= 100"`
	MaxUses         *int64     // NULL means unlimited
	Used            int64      `gorm:"not null;default:0"`
	ExpiresAt       *time.Time // NULL means never expires
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Discount
func (Discount) TableName() string {
	return "discounts"
}
