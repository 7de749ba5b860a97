package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// OrderView is an order header with its frozen item lines.
type OrderView struct {
	Order *entity.Order
	Items []*entity.OrderItem
}

// RefundConfirmation reports a successful cancellation.
type RefundConfirmation struct {
	OrderID     uint
	Refunded    decimal.Decimal
	Transaction *entity.Transaction
}

// OrderUsecase handles post-settlement order lifecycle.
type OrderUsecase interface {
	// GetOrder retrieves one of the user's orders with its items.
	GetOrder(ctx context.Context, userID, orderID uint) (*OrderView, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error)

	// Cancel cancels a pending or processing order: status moves to
	// cancelled, the full total is refunded to the order's account with a
	// refund transaction, and every item's stock is restored. Completed and
	// cancelled orders fail with InvalidOrderState.
	Cancel(ctx context.Context, userID, orderID uint) (*RefundConfirmation, error)
}
