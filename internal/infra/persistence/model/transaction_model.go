package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table. Rows are append-only;
// corrections are expressed as new rows, never updates.
type TransactionModel struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	AccountID       uint            `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TransactionType string          `gorm:"type:varchar(30);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:completed"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
