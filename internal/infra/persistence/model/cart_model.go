package model

import (
	"time"
)

// CartModel mirrors the 'carts' table; one row per user.
type CartModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. (cart_id, product_id) is
// unique; adding the same product again bumps Quantity instead.
type CartItemModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	CartID    uint `gorm:"not null;index;uniqueIndex:idx_cart_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity  int  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
