package postgres

import (
	"context"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMerchantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Update persists changes to an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"mrp":         productM.MRP,
			"stock":       productM.Stock,
			"category":    productM.Category,
			"image_url":   productM.ImageURL,
			"status":      productM.Status,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListActive retrieves every product visible to shoppers.
func (repo *productRepository) ListActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProductActive)).
		Order("created_at DESC, id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainSlice(productModels), nil
}

// ListByMerchant retrieves all products owned by a merchant.
func (repo *productRepository) ListByMerchant(ctx context.Context, merchantID uint) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC, id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by merchant")
	}

	return toProductDomainSlice(productModels), nil
}

// ListByCategory retrieves active products within a category.
func (repo *productRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, string(entity.ProductActive)).
		Order("created_at DESC, id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomainSlice(productModels), nil
}

// ListFeatured retrieves active, in-stock products sold below list price,
// biggest absolute discount first.
func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND stock > 0 AND price < mrp", string(entity.ProductActive)).
		Order("(mrp - price) DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return toProductDomainSlice(productModels), nil
}

// Categories retrieves the distinct categories of active products.
func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("status = ? AND category <> ''", string(entity.ProductActive)).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// DecrementStock reserves quantity units. The stock guard is part of the
// UPDATE itself, so two concurrent checkouts can never both succeed against
// the same last unit.
func (repo *productRepository) DecrementStock(ctx context.Context, productID uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from insufficient stock.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", productID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// RestoreStock returns quantity units after a cancellation.
func (repo *productRepository) RestoreStock(ctx context.Context, productID uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain converts a GORM model to a domain entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		MRP:         data.MRP,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		Status:      entity.ProductStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain entity to a GORM model.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		MRP:         data.MRP,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
