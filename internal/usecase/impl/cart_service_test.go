package impl

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	mockRepo "walletmart/internal/mocks/repository"
)

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5, Status: entity.ProductActive}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().Create(ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
		return cart.UserID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Cart).ID = 3
	}).Return(nil)
	cartRepo.EXPECT().FindItem(ctx, uint(3), uint(11)).Return(nil, repository.ErrCartItemNotFound)
	cartRepo.EXPECT().CreateItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
		return item.CartID == 3 && item.ProductID == 11 && item.Quantity == 2
	})).Return(nil)

	service := NewCartService(cartRepo, productRepo, testClock)

	err := service.AddItem(ctx, 1, 11, 2)

	require.NoError(t, err)
}

func TestCartService_AddItem_RepeatAddIsAdditive(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5, Status: entity.ProductActive}
	cart := &entity.Cart{ID: 3, UserID: 1}
	existing := &entity.CartItem{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	cartRepo.EXPECT().FindItem(ctx, uint(3), uint(11)).Return(existing, nil)
	cartRepo.EXPECT().UpdateItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
		return item.ID == 21 && item.Quantity == 5
	})).Return(nil)

	service := NewCartService(cartRepo, productRepo, testClock)

	err := service.AddItem(ctx, 1, 11, 3)

	require.NoError(t, err)
}

func TestCartService_AddItem_StockAdvisoryCheck(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 4, Status: entity.ProductActive}
	cart := &entity.Cart{ID: 3, UserID: 1}
	existing := &entity.CartItem{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	cartRepo.EXPECT().FindItem(ctx, uint(3), uint(11)).Return(existing, nil)

	service := NewCartService(cartRepo, productRepo, testClock)

	err := service.AddItem(ctx, 1, 11, 3)

	require.Error(t, err)
	assert.Equal(t, "Not enough stock for Mixer Grinder. Available: 4", err.Error())
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Stock: 5, Status: entity.ProductInactive}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)

	service := NewCartService(cartRepo, productRepo, testClock)

	// Inactive products read as missing to customers.
	err := service.AddItem(ctx, 1, 11, 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(cartRepo, productRepo, testClock)

	for _, quantity := range []int{0, -1} {
		err := service.AddItem(ctx, 1, 11, quantity)
		require.Error(t, err, "quantity %d", quantity)
	}
}

func TestCartService_UpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	cart := &entity.Cart{ID: 3, UserID: 1}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	cartRepo.EXPECT().DeleteItem(ctx, uint(3), uint(11)).Return(nil)

	service := NewCartService(cartRepo, productRepo, testClock)

	err := service.UpdateItemQuantity(ctx, 1, 11, 0)

	require.NoError(t, err)
}

func TestCartService_GetCart_NoCartReadsEmpty(t *testing.T) {
	ctx := context.Background()
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(nil, repository.ErrCartNotFound)

	service := NewCartService(cartRepo, productRepo, testClock)

	view, err := service.GetCart(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, view.Cart)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())
}

func TestCartService_GetCart_SkipsStaleLines(t *testing.T) {
	ctx := context.Background()
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{
		{ID: 21, CartID: 3, ProductID: 11, Quantity: 2},
		{ID: 22, CartID: 3, ProductID: 12, Quantity: 1},
	}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5, Status: entity.ProductActive}

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	cartRepo.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	productRepo.EXPECT().FindByID(ctx, uint(12)).Return(nil, repository.ErrProductNotFound)

	service := NewCartService(cartRepo, productRepo, testClock)

	view, err := service.GetCart(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(200)))
}

func TestCartService_Clear_NoCartIsNoop(t *testing.T) {
	ctx := context.Background()
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	cartRepo.EXPECT().FindByUser(ctx, uint(1)).Return(nil, repository.ErrCartNotFound)

	service := NewCartService(cartRepo, productRepo, testClock)

	err := service.Clear(ctx, 1)

	require.NoError(t, err)
}
