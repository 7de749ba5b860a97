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
	"walletmart/internal/usecase"
)

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1, BusinessName: "Kitchen Korner"}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)
	productRepo.EXPECT().Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
		return product.MerchantID == 5 &&
			product.Status == entity.ProductActive &&
			product.Price.Equal(decimal.NewFromInt(100)) &&
			product.MRP.Equal(decimal.NewFromInt(120))
	})).Return(nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	product, err := service.CreateProduct(ctx, 1, &usecase.CreateProductInput{
		Name:     "Mixer Grinder",
		Price:    decimal.NewFromInt(100),
		MRP:      decimal.NewFromInt(120),
		Stock:    5,
		Category: "Appliances",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProductActive, product.Status)
	assert.Equal(t, testClock.now, product.CreatedAt)
}

func TestCatalogService_CreateProduct_MRPDefaultsToPrice(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)
	productRepo.EXPECT().Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
		return product.MRP.Equal(decimal.NewFromInt(100))
	})).Return(nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	product, err := service.CreateProduct(ctx, 1, &usecase.CreateProductInput{
		Name:  "Mixer Grinder",
		Price: decimal.NewFromInt(100),
		Stock: 5,
	})

	require.NoError(t, err)
	assert.False(t, product.Discounted())
}

func TestCatalogService_CreateProduct_NotAMerchant(t *testing.T) {
	ctx := context.Background()
	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(nil, repository.ErrMerchantNotFound)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	product, err := service.CreateProduct(ctx, 1, &usecase.CreateProductInput{
		Name:  "Mixer Grinder",
		Price: decimal.NewFromInt(100),
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestCatalogService_CreateProduct_InvalidPrice(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	product, err := service.CreateProduct(ctx, 1, &usecase.CreateProductInput{
		Name:  "Mixer Grinder",
		Price: decimal.Zero,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestCatalogService_UpdateProduct_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1}
	product := &entity.Product{
		ID:         11,
		MerchantID: 5,
		Name:       "Mixer Grinder",
		Price:      decimal.NewFromInt(100),
		MRP:        decimal.NewFromInt(120),
		Stock:      5,
		Status:     entity.ProductActive,
	}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)
	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	productRepo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Price.Equal(decimal.NewFromInt(90)) && p.Name == "Mixer Grinder" && p.Stock == 5
	})).Return(nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	newPrice := decimal.NewFromInt(90)
	updated, err := service.UpdateProduct(ctx, 1, 11, &usecase.UpdateProductInput{Price: &newPrice})

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Mixer Grinder", updated.Name)
}

func TestCatalogService_UpdateProduct_NotOwner(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1}
	product := &entity.Product{ID: 11, MerchantID: 6}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)
	productRepo.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	updated, err := service.UpdateProduct(ctx, 1, 11, &usecase.UpdateProductInput{})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_ListFeatured_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	productRepo.EXPECT().ListFeatured(ctx, 10).Return([]*entity.Product{}, nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	_, err := service.ListFeatured(ctx, 0)

	require.NoError(t, err)
}

func TestCatalogService_ListMerchantProducts(t *testing.T) {
	ctx := context.Background()
	merchant := &entity.Merchant{ID: 5, UserID: 1}
	products := []*entity.Product{
		{ID: 11, MerchantID: 5, Status: entity.ProductActive},
		{ID: 12, MerchantID: 5, Status: entity.ProductInactive},
	}

	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)

	merchantRepo.EXPECT().FindByUser(ctx, uint(1)).Return(merchant, nil)
	productRepo.EXPECT().ListByMerchant(ctx, uint(5)).Return(products, nil)

	service := NewCatalogService(productRepo, merchantRepo, testClock)

	listed, err := service.ListMerchantProducts(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
