package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// CreateProductInput carries the fields of a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	MRP         decimal.Decimal
	Stock       int
	Category    string
	ImageURL    string
}

// UpdateProductInput carries optional product changes; nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	MRP         *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
	Status      *entity.ProductStatus
}

// CatalogUsecase manages merchant products and their stock.
type CatalogUsecase interface {
	// CreateProduct lists a new product under the merchant owned by userID.
	CreateProduct(ctx context.Context, userID uint, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the non-nil fields of input. The product must
	// belong to the merchant owned by userID.
	UpdateProduct(ctx context.Context, userID, productID uint, input *UpdateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, productID uint) (*entity.Product, error)

	// ListProducts retrieves every active product.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListByCategory retrieves active products in a category.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// ListFeatured retrieves active discounted products, biggest discount first.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// Categories retrieves the distinct categories of active products.
	Categories(ctx context.Context) ([]string, error)

	// ListMerchantProducts retrieves the catalog of the merchant owned by
	// userID, including inactive entries.
	ListMerchantProducts(ctx context.Context, userID uint) ([]*entity.Product, error)
}
