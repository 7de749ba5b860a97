package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. TotalAmount, WalletAmount and
// RewardDiscount are frozen at settlement time and never recomputed.
type OrderModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	UserID         uint            `gorm:"not null;index"`
	AccountID      uint            `gorm:"not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	WalletAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	RewardDiscount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. PriceAtTime is the unit
// price captured at checkout; later catalog edits do not touch it.
type OrderItemModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	PriceAtTime decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
