package entity

import "time"

// Cart is the per-user mutable item list consumed (and cleared) by checkout.
// It is created lazily on the first add.
type Cart struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem holds one product line in a cart. Quantity is additive on repeat
// adds of the same product; stock is only advisory at add time and is
// re-validated against current stock at settlement.
type CartItem struct {
	ID        uint
	CartID    uint
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
