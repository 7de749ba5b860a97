package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus controls catalog visibility.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductInactive   ProductStatus = "inactive"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// Product is a merchant-owned catalog entry. Stock must stay >= 0 and is
// mutated only by the catalog manager during order placement and
// cancellation, via conditional decrements that never observe stale reads.
type Product struct {
	ID          uint
	MerchantID  uint
	Name        string
	Description string
	Price       decimal.Decimal // Selling price; expected <= MRP but not enforced.
	MRP         decimal.Decimal // List price.
	Stock       int
	Category    string
	ImageURL    string
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Discounted reports whether the product is sold below list price.
func (p *Product) Discounted() bool {
	return p.Price.LessThan(p.MRP)
}
