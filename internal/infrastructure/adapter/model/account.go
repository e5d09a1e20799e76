package model

import (
	"time"
)

// Account represents the database model for credit accounts. The primary key
// is the external auth provider's user ID.
type Account struct {
	ID             string          `gorm:"primaryKey;size:255"`
	Credits        int64           `gorm:"not null;default:0;check:credits >= 0"`
	IsAdmin        bool            `gorm:"not null;default:false"`
	WaitlistStatus map[string]bool `gorm:"serializer:json;type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
