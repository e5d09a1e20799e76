package model

import (
	"time"
)

// Plan represents the database model for purchasable credit bundles
type Plan struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"not null;size:255"`
	Price          int64     `gorm:"not null"` // Minor currency units
	CreditsGranted int64     `gorm:"not null"`
	IsPopular      bool      `gorm:"not null;default:false"`
	Benefits       []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Plan
func (Plan) TableName() string {
	return "plans"
}
