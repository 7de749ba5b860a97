package impl

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	clock       service.Clock
}

// NewCartService creates a new cart service instance
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	clock service.Clock,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		clock:       clock,
	}
}

// AddItem puts quantity units of a product into the user's cart. The stock
// check here is advisory only; checkout re-validates against current stock.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}
	if product.Status != entity.ProductActive {
		return domainerrors.ErrProductNotFound
	}

	cart, err := s.findOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, productID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.Wrap(err, "failed to find cart item")
	}

	newQuantity := quantity
	if item != nil {
		newQuantity += item.Quantity
	}
	if newQuantity > product.Stock {
		return domainerrors.ErrOutOfStock.
			WithMessage(fmt.Sprintf("Not enough stock for %s. Available: %d", product.Name, product.Stock))
	}

	if item != nil {
		item.Quantity = newQuantity
		item.UpdatedAt = s.clock.Now()

		return s.cartRepo.UpdateItem(ctx, item)
	}

	now := s.clock.Now()

	return s.cartRepo.CreateItem(ctx, &entity.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// UpdateItemQuantity sets the quantity of an existing line; zero removes it.
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return errors.Wrap(err, "failed to find cart")
	}

	if quantity == 0 {
		return s.removeLine(ctx, cart.ID, productID)
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to find cart item")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}
	if quantity > product.Stock {
		return domainerrors.ErrOutOfStock.
			WithMessage(fmt.Sprintf("Not enough stock for %s. Available: %d", product.Name, product.Stock))
	}

	item.Quantity = quantity
	item.UpdatedAt = s.clock.Now()

	return s.cartRepo.UpdateItem(ctx, item)
}

// RemoveItem deletes a line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return errors.Wrap(err, "failed to find cart")
	}

	return s.removeLine(ctx, cart.ID, productID)
}

// GetCart retrieves the cart with product details and subtotal.
func (s *cartService) GetCart(ctx context.Context, userID uint) (*usecase.CartView, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// A user who never added anything simply has an empty cart.
			return &usecase.CartView{Subtotal: decimal.Zero}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	view := &usecase.CartView{
		Cart:     cart,
		Lines:    make([]*usecase.CartLine, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Product was removed from the catalog; skip the stale line.
				continue
			}

			return nil, errors.Wrap(err, "failed to find product")
		}

		lineCost := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Lines = append(view.Lines, &usecase.CartLine{
			Item:     item,
			Product:  product,
			LineCost: lineCost,
		})
		view.Subtotal = view.Subtotal.Add(lineCost)
	}

	return view, nil
}

// Clear removes every line from the user's cart.
func (s *cartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find cart")
	}

	return s.cartRepo.ClearItems(ctx, cart.ID)
}

func (s *cartService) findOrCreateCart(ctx context.Context, userID uint) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	now := s.clock.Now()
	cart = &entity.Cart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

func (s *cartService) removeLine(ctx context.Context, cartID, productID uint) error {
	if err := s.cartRepo.DeleteItem(ctx, cartID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}
