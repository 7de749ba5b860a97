package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logRepo   repository.LogRepository
	clock     service.Clock
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	logRepo repository.LogRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logRepo:   logRepo,
		clock:     clock,
		logger:    logger,
	}
}

// GetOrder retrieves one of the user's orders with its frozen item lines.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uint) (*usecase.OrderView, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	items, err := s.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	return &usecase.OrderView{Order: order, Items: items}, nil
}

// ListOrders retrieves the user's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Cancel reverses a pending or processing order: status, refund and restock
// all move in one store transaction.
func (s *orderService) Cancel(ctx context.Context, userID, orderID uint) (*usecase.RefundConfirmation, error) {
	var confirmation *usecase.RefundConfirmation

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()
		order, err := orderRepo.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.Status == entity.OrderCompleted || order.Status == entity.OrderCancelled {
			return domainerrors.ErrInvalidOrderState
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderCancelled); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		// Refund the full total with its ledger row.
		refund := &entity.Transaction{
			AccountID: order.AccountID,
			Amount:    order.TotalAmount,
			Type:      entity.TransactionRefund,
			Status:    entity.TransactionCompleted,
			CreatedAt: s.clock.Now(),
		}
		if err := f.NewAccountRepository().Credit(ctx, order.AccountID, order.TotalAmount); err != nil {
			return errors.Wrap(err, "failed to refund account")
		}
		if err := f.NewTransactionRepository().Create(ctx, refund); err != nil {
			return errors.Wrap(err, "failed to create refund transaction")
		}

		// Return every item's units to stock.
		items, err := orderRepo.ListItems(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list order items")
		}
		productRepo := f.NewProductRepository()
		for _, item := range items {
			if err := productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore stock")
			}
		}

		confirmation = &usecase.RefundConfirmation{
			OrderID:     order.ID,
			Refunded:    order.TotalAmount,
			Transaction: refund,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, confirmation)

	return confirmation, nil
}

func (s *orderService) audit(ctx context.Context, userID uint, confirmation *usecase.RefundConfirmation) {
	entry := &entity.LogEntry{
		UserID:      userID,
		Action:      "cancel_order",
		Description: fmt.Sprintf("Cancelled order #%d, refunded %s", confirmation.OrderID, confirmation.Refunded.StringFixed(2)),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log for cancellation",
			slog.Uint64("order_id", uint64(confirmation.OrderID)),
			slog.Any("error", err),
		)
	}
}
