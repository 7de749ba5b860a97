package model

import (
	"time"
)

// LogModel mirrors the 'logs' table, the append-only audit trail.
type LogModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	UserID      uint   `gorm:"not null;index"`
	Action      string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LogModel) TableName() string {
	return "logs"
}
