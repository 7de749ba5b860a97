package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// CartLine is a cart item joined with its live product detail.
type CartLine struct {
	Item     *entity.CartItem
	Product  *entity.Product
	LineCost decimal.Decimal
}

// CartView is a cart with product details and the running subtotal.
type CartView struct {
	Cart     *entity.Cart
	Lines    []*CartLine
	Subtotal decimal.Decimal
}

// CartUsecase manages the per-user cart. Stock checks here are advisory;
// the binding check happens at checkout against current stock.
type CartUsecase interface {
	// AddItem puts quantity units of a product into the user's cart,
	// creating the cart lazily and adding to an existing line's quantity.
	AddItem(ctx context.Context, userID, productID uint, quantity int) error

	// UpdateItemQuantity sets the quantity of an existing line. Zero removes
	// the line.
	UpdateItemQuantity(ctx context.Context, userID, productID uint, quantity int) error

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, userID, productID uint) error

	// GetCart retrieves the cart with product details and subtotal. A user
	// with no cart yet gets an empty view, not an error.
	GetCart(ctx context.Context, userID uint) (*CartView, error)

	// Clear removes every line from the user's cart.
	Clear(ctx context.Context, userID uint) error
}
