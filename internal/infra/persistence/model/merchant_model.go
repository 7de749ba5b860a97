package model

import (
	"time"
)

// MerchantModel mirrors the 'merchants' table.
type MerchantModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	UserID           uint   `gorm:"not null;uniqueIndex"`
	BusinessName     string `gorm:"type:varchar(100);not null"`
	BusinessCategory string `gorm:"type:varchar(50)"`
	ContactName      string `gorm:"type:varchar(100)"`
	ContactEmail     string `gorm:"type:varchar(255)"`
	ContactPhone     string `gorm:"type:varchar(20)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
