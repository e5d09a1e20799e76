package model

import (
	"time"
)

// Transaction represents the database model for the append-only transaction
// log. The unique index on PaymentRef makes audit writes idempotent per
// external payment.
type Transaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         string    `gorm:"not null;index;size:255"`
	Amount         int64     `gorm:"not null"` // Minor currency units
	Type           string    `gorm:"not null;size:50"`
	PaymentRef     *string   `gorm:"uniqueIndex;size:255"` // NULL for pure grants
	CreditsGranted int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
