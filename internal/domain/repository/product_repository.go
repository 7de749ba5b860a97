package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update matches no row, i.e. stock would have gone negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository persists catalog entries. DecrementStock is the
// reserve-and-decrement primitive: a single conditional statement
// (stock >= quantity) so two concurrent checkouts can never both pass a
// stock check against the same stale read.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListByMerchant(ctx context.Context, merchantID uint) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// ListFeatured returns active, in-stock products sold below list price,
	// biggest discount first.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)

	DecrementStock(ctx context.Context, productID uint, quantity int) error
	RestoreStock(ctx context.Context, productID uint, quantity int) error
}
