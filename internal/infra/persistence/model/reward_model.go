package model

import (
	"time"
)

// RewardPointModel mirrors the 'reward_points' table. Each row is a lot:
// points earned from one purchase, spent (or split) as a unit.
type RewardPointModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TransactionID *uint  `gorm:"index"`
	UserID        uint   `gorm:"not null;index"`
	Points        int    `gorm:"not null"`
	Status        string `gorm:"type:varchar(20);not null;default:earned"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardPointModel) TableName() string {
	return "reward_points"
}
