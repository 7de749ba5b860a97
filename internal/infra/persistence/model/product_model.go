package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Stock only moves through
// conditional decrements so it can never go negative under concurrency.
type ProductModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	MerchantID  uint            `gorm:"not null;index"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MRP         decimal.Decimal `gorm:"column:mrp;type:decimal(10,2)"`
	Stock       int             `gorm:"not null;default:0"`
	Category    string          `gorm:"type:varchar(50);index"`
	ImageURL    string          `gorm:"type:varchar(255)"`
	Status      string          `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
