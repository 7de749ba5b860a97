package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountModel mirrors the 'accounts' table. Balance is a fixed-point column;
// all mutations go through conditional UPDATE statements, never read-modify-write.
type AccountModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      uint            `gorm:"not null;index"`
	AccountType string          `gorm:"type:varchar(20);not null;default:user"`
	Balance     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
