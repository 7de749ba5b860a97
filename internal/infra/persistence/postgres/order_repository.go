package postgres

import (
	"context"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order header.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateItems persists the frozen item lines of an order in one batch.
func (repo *orderRepository) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, itemM := range itemModels {
		items[i].ID = itemM.ID
		items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindByIDForUser retrieves an order scoped to its owner. Other users get
// ErrOrderNotFound rather than a forbidden error, so order ids don't leak.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves a user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListItems retrieves the item lines of an order.
func (repo *orderRepository) ListItems(ctx context.Context, orderID uint) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// UpdateStatus moves an order through its lifecycle.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Stats aggregates order count and completed revenue for the admin dashboard.
func (repo *orderRepository) Stats(ctx context.Context) (*repository.OrderStats, error) {
	var stats repository.OrderStats

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&stats.Orders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	var revenue decimal.NullDecimal
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", string(entity.OrderCompleted)).
		Select("SUM(total_amount)").
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum order revenue")
	}
	if revenue.Valid {
		stats.Revenue = revenue.Decimal
	} else {
		stats.Revenue = decimal.Zero
	}

	return &stats, nil
}

// toOrderDomain converts a GORM model to a domain entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		AccountID:      data.AccountID,
		TotalAmount:    data.TotalAmount,
		WalletAmount:   data.WalletAmount,
		RewardDiscount: data.RewardDiscount,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		Status:         entity.OrderStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain entity to a GORM model.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		AccountID:      data.AccountID,
		TotalAmount:    data.TotalAmount,
		WalletAmount:   data.WalletAmount,
		RewardDiscount: data.RewardDiscount,
		PaymentMethod:  string(data.PaymentMethod),
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM model to a domain entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		Quantity:    data.Quantity,
		PriceAtTime: data.PriceAtTime,
		CreatedAt:   data.CreatedAt,
	}
}

// fromOrderItemDomain converts a domain entity to a GORM model.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		Quantity:    data.Quantity,
		PriceAtTime: data.PriceAtTime,
		CreatedAt:   data.CreatedAt,
	}
}
