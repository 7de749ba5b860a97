package impl

import (
	"context"

	"github.com/pkg/errors"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	merchantRepo repository.MerchantRepository
	clock        service.Clock
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	merchantRepo repository.MerchantRepository,
	clock service.Clock,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		clock:        clock,
	}
}

// CreateProduct lists a new product under the merchant owned by userID.
func (s *catalogService) CreateProduct(ctx context.Context, userID uint, input *usecase.CreateProductInput) (*entity.Product, error) {
	merchant, err := s.merchantRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	mrp := input.MRP
	if mrp.IsZero() {
		mrp = input.Price
	}

	now := s.clock.Now()
	product := &entity.Product{
		MerchantID:  merchant.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		MRP:         mrp,
		Stock:       input.Stock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Status:      entity.ProductActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct applies the non-nil fields of input to one of the caller's
// own products.
func (s *catalogService) UpdateProduct(ctx context.Context, userID, productID uint, input *usecase.UpdateProductInput) (*entity.Product, error) {
	merchant, err := s.merchantRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.MerchantID != merchant.ID {
		return nil, domainerrors.ErrForbidden
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrInvalidAmount
		}
		product.Price = *input.Price
	}
	if input.MRP != nil {
		product.MRP = *input.MRP
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	product.UpdatedAt = s.clock.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// GetProduct retrieves a single product.
func (s *catalogService) GetProduct(ctx context.Context, productID uint) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves every active product.
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListByCategory retrieves active products in a category.
func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ListFeatured retrieves active discounted products, biggest discount first.
func (s *catalogService) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 10
	}

	products, err := s.productRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// Categories retrieves the distinct categories of active products.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListMerchantProducts retrieves the caller's full catalog, inactive included.
func (s *catalogService) ListMerchantProducts(ctx context.Context, userID uint) ([]*entity.Product, error) {
	merchant, err := s.merchantRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	products, err := s.productRepo.ListByMerchant(ctx, merchant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return products, nil
}
