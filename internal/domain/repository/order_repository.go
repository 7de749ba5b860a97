package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderStats is the read model behind the admin dashboard.
type OrderStats struct {
	Orders  int64
	Revenue decimal.Decimal
}

// OrderRepository persists checkout snapshots and their frozen item lines.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItems(ctx context.Context, items []*entity.OrderItem) error
	// FindByIDForUser scopes the lookup to the owning user; other users see
	// ErrOrderNotFound, not a forbidden error, to avoid leaking order ids.
	FindByIDForUser(ctx context.Context, orderID, userID uint) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error)
	ListItems(ctx context.Context, orderID uint) ([]*entity.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus) error
	Stats(ctx context.Context) (*OrderStats, error)
}
