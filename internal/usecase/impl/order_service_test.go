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

func TestOrderService_GetOrder_Success(t *testing.T) {
	ctx := context.Background()
	order := &entity.Order{ID: 9, UserID: 1, Status: entity.OrderCompleted}
	items := []*entity.OrderItem{{ID: 31, OrderID: 9, ProductID: 11, Quantity: 2}}

	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{}}

	orderRepo.EXPECT().FindByIDForUser(ctx, uint(9), uint(1)).Return(order, nil)
	orderRepo.EXPECT().ListItems(ctx, uint(9)).Return(items, nil)

	service := NewOrderService(txManager, orderRepo, logRepo, testClock, newDiscardLogger())

	view, err := service.GetOrder(ctx, 1, 9)

	require.NoError(t, err)
	assert.Equal(t, order, view.Order)
	assert.Len(t, view.Items, 1)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	ctx := context.Background()
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{}}

	orderRepo.EXPECT().FindByIDForUser(ctx, uint(9), uint(1)).Return(nil, repository.ErrOrderNotFound)

	service := NewOrderService(txManager, orderRepo, logRepo, testClock, newDiscardLogger())

	view, err := service.GetOrder(ctx, 1, 9)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

// Cancelling a processing order refunds the full total, records the refund in
// the ledger and puts every unit back on the shelf.
func TestOrderService_Cancel_ProcessingOrder(t *testing.T) {
	ctx := context.Background()
	order := &entity.Order{
		ID:          9,
		UserID:      1,
		AccountID:   7,
		TotalAmount: decimal.NewFromInt(300),
		Status:      entity.OrderProcessing,
	}
	items := []*entity.OrderItem{
		{ID: 31, OrderID: 9, ProductID: 11, Quantity: 2},
		{ID: 32, OrderID: 9, ProductID: 12, Quantity: 1},
	}

	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txTxRepo := mockRepo.NewMockTransactionRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{
		orders:       txOrderRepo,
		accounts:     txAccountRepo,
		transactions: txTxRepo,
		products:     txProductRepo,
	}}

	txOrderRepo.EXPECT().FindByIDForUser(ctx, uint(9), uint(1)).Return(order, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, uint(9), entity.OrderCancelled).Return(nil)
	txAccountRepo.EXPECT().Credit(ctx, uint(7), mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromInt(300))
	})).Return(nil)
	txTxRepo.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionRefund && tx.Amount.Equal(decimal.NewFromInt(300))
	})).Return(nil)
	txOrderRepo.EXPECT().ListItems(ctx, uint(9)).Return(items, nil)
	txProductRepo.EXPECT().RestoreStock(ctx, uint(11), 2).Return(nil)
	txProductRepo.EXPECT().RestoreStock(ctx, uint(12), 1).Return(nil)
	logRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)

	service := NewOrderService(txManager, orderRepo, logRepo, testClock, newDiscardLogger())

	confirmation, err := service.Cancel(ctx, 1, 9)

	require.NoError(t, err)
	assert.Equal(t, uint(9), confirmation.OrderID)
	assert.True(t, confirmation.Refunded.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, entity.TransactionRefund, confirmation.Transaction.Type)
}

func TestOrderService_Cancel_TerminalStates(t *testing.T) {
	ctx := context.Background()

	for _, status := range []entity.OrderStatus{entity.OrderCompleted, entity.OrderCancelled} {
		order := &entity.Order{ID: 9, UserID: 1, Status: status}

		orderRepo := mockRepo.NewMockOrderRepository(t)
		logRepo := mockRepo.NewMockLogRepository(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txManager := &fakeTxManager{factory: &stubFactory{orders: txOrderRepo}}

		txOrderRepo.EXPECT().FindByIDForUser(ctx, uint(9), uint(1)).Return(order, nil)

		service := NewOrderService(txManager, orderRepo, logRepo, testClock, newDiscardLogger())

		confirmation, err := service.Cancel(ctx, 1, 9)

		assert.Nil(t, confirmation)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderState, "status %s", status)
	}
}

func TestOrderService_Cancel_OtherUsersOrder(t *testing.T) {
	ctx := context.Background()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{orders: txOrderRepo}}

	txOrderRepo.EXPECT().FindByIDForUser(ctx, uint(9), uint(1)).Return(nil, repository.ErrOrderNotFound)

	service := NewOrderService(txManager, orderRepo, logRepo, testClock, newDiscardLogger())

	confirmation, err := service.Cancel(ctx, 1, 9)

	assert.Nil(t, confirmation)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
