package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"
)

// ErrCartNotFound is returned when the user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when the product is not in the cart.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists per-user carts and their item lines.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	FindByUser(ctx context.Context, userID uint) (*entity.Cart, error)

	CreateItem(ctx context.Context, item *entity.CartItem) error
	FindItem(ctx context.Context, cartID, productID uint) (*entity.CartItem, error)
	UpdateItem(ctx context.Context, item *entity.CartItem) error
	DeleteItem(ctx context.Context, cartID, productID uint) error
	ListItems(ctx context.Context, cartID uint) ([]*entity.CartItem, error)
	// ClearItems removes every line of the cart; checkout calls this as the
	// final mutating step of settlement.
	ClearItems(ctx context.Context, cartID uint) error
}
