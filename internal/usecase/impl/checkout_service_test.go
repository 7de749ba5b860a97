package impl

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/service"
	mockRepo "walletmart/internal/mocks/repository"
	mockSvc "walletmart/internal/mocks/service"
	"walletmart/internal/usecase"
)

type checkoutFixture struct {
	accounts  *mockRepo.MockAccountRepository
	carts     *mockRepo.MockCartRepository
	products  *mockRepo.MockProductRepository
	orders    *mockRepo.MockOrderRepository
	rewards   *mockRepo.MockRewardRepository
	ledger    *mockRepo.MockTransactionRepository
	logs      *mockRepo.MockLogRepository
	publisher *mockSvc.MockEventPublisher
	service   usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T, autoConvert bool) *checkoutFixture {
	f := &checkoutFixture{
		accounts:  mockRepo.NewMockAccountRepository(t),
		carts:     mockRepo.NewMockCartRepository(t),
		products:  mockRepo.NewMockProductRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		rewards:   mockRepo.NewMockRewardRepository(t),
		ledger:    mockRepo.NewMockTransactionRepository(t),
		logs:      mockRepo.NewMockLogRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	txManager := &fakeTxManager{factory: &stubFactory{
		accounts:     f.accounts,
		carts:        f.carts,
		products:     f.products,
		orders:       f.orders,
		rewards:      f.rewards,
		transactions: f.ledger,
		logs:         f.logs,
	}}
	f.service = NewCheckoutService(txManager, f.logs, f.publisher, testClock, newTestConfig(autoConvert), newDiscardLogger())

	return f
}

// Two units at 100 against a wallet holding 50: the wallet covers 50, the
// card carries the remaining 150, stock drops by two and 5% of the subtotal
// comes back as points.
func TestCheckoutService_PlaceOrder_CardWithPartialWallet(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(50)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5, Status: entity.ProductActive}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)

	f.orders.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.UserID == 1 &&
			order.Status == entity.OrderCompleted &&
			order.TotalAmount.Equal(decimal.NewFromInt(200)) &&
			order.WalletAmount.Equal(decimal.NewFromInt(50))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = 99
	}).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.MatchedBy(func(lines []*entity.OrderItem) bool {
		return len(lines) == 1 &&
			lines[0].OrderID == 99 &&
			lines[0].Quantity == 2 &&
			lines[0].PriceAtTime.Equal(decimal.NewFromInt(100))
	})).Return(nil)

	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	f.accounts.EXPECT().Debit(ctx, uint(7), mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromInt(50))
	})).Return(nil)
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionPurchase && tx.Amount.Equal(decimal.NewFromInt(200))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Transaction).ID = 500
	}).Return(nil)
	f.rewards.EXPECT().Create(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.TransactionID != nil && *lot.TransactionID == 500 &&
			lot.Points == 10 && lot.Status == entity.RewardEarned
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)

	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.MatchedBy(func(event *service.SettlementEvent) bool {
		return event.OrderID == 99 && event.TotalAmount == "200.00" && event.WalletAmount == "50.00"
	})).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
		UseWallet:     true,
		OrderDate:     "2025-06-15T10:30:00Z",
	})

	require.NoError(t, err)
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, result.WalletAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.FinalAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, entity.OrderCompleted, result.Order.Status)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), result.Order.CreatedAt)
}

func TestCheckoutService_PlaceOrder_WalletCannotCoverResidual(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(50)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentWallet,
		UseWallet:     true,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientWalletBalance)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(50)}
	cart := &entity.Cart{ID: 3, UserID: 1}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return([]*entity.CartItem{}, nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_PlaceOrder_StockMovedSinceCartAdd(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(500)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 1}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentWallet,
		UseWallet:     true,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, "Not enough stock for Mixer Grinder. Available: 1", err.Error())
}

// Cash on delivery settles the full amount externally and mints nothing.
func TestCheckoutService_PlaceOrder_CODEarnsNoPoints(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.Zero}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	// No Debit: the wallet contributes nothing. The purchase row still lands.
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionPurchase && tx.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCashOnDelivery,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsEarned)
	assert.True(t, result.WalletAmount.IsZero())
	assert.True(t, result.FinalAmount.Equal(decimal.NewFromInt(200)))
}

func TestCheckoutService_PlaceOrder_RedeemPointsDiscount(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(500)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}
	lots := []*entity.RewardLot{
		{ID: 1, TransactionID: uintPtr(41), UserID: 1, Points: 20, Status: entity.RewardEarned},
	}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.rewards.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)

	f.orders.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.RewardDiscount.Equal(decimal.NewFromInt(2)) &&
			order.WalletAmount.Equal(decimal.NewFromInt(198))
	})).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	f.accounts.EXPECT().Debit(ctx, uint(7), mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromInt(198))
	})).Return(nil)
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionPurchase && tx.Amount.Equal(decimal.NewFromInt(198))
	})).Return(nil)
	f.rewards.EXPECT().Update(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.ID == 1 && lot.Status == entity.RewardRedeemed
	})).Return(nil)
	f.rewards.EXPECT().Create(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.Points == 10 && lot.Status == entity.RewardEarned
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentWallet,
		UseWallet:     true,
		RedeemPoints:  20,
	})

	require.NoError(t, err)
	assert.True(t, result.RewardDiscount.Equal(decimal.NewFromInt(2)))
	assert.True(t, result.WalletAmount.Equal(decimal.NewFromInt(198)))
	assert.True(t, result.FinalAmount.IsZero())
}

func TestCheckoutService_PlaceOrder_InsufficientRewardPoints(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(500)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 1}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}
	lots := []*entity.RewardLot{
		{ID: 1, UserID: 1, Points: 12, Status: entity.RewardEarned},
	}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.rewards.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentWallet,
		RedeemPoints:  50,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, "Insufficient reward points. Available: 12", err.Error())
}

// With auto-conversion on, the freshly minted lot is retired on the spot and
// its value lands in the wallet as a reward_redemption row.
func TestCheckoutService_PlaceOrder_AutoConvertRewards(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, true)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.Zero}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionPurchase
	})).Return(nil)
	f.rewards.EXPECT().Create(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.Points == 10
	})).Return(nil)
	f.rewards.EXPECT().Update(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.Status == entity.RewardRedeemed
	})).Return(nil)
	f.accounts.EXPECT().Credit(ctx, uint(7), mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromInt(1))
	})).Return(nil)
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionRewardRedemption && tx.Amount.Equal(decimal.NewFromInt(1))
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, result.PointsEarned)
}

// A funded wallet stays untouched unless the caller opts in: the full
// subtotal rides on the external rail and no debit is issued.
func TestCheckoutService_PlaceOrder_WalletUntouchedWithoutOptIn(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(100)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.orders.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.WalletAmount.IsZero()
	})).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	// No accounts.Debit expectation: touching the balance fails the test.
	f.ledger.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionPurchase && tx.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCashOnDelivery,
	})

	require.NoError(t, err)
	assert.True(t, result.WalletAmount.IsZero())
	assert.True(t, result.FinalAmount.Equal(decimal.NewFromInt(200)))
}

// A discount covering the whole subtotal leaves nothing owed: no debit, no
// purchase row, and the minted lot points at no transaction.
func TestCheckoutService_PlaceOrder_FullRewardCoverageSkipsLedgerRow(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(500)}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 1}}
	product := &entity.Product{ID: 11, Name: "Steel Bottle", Price: decimal.NewFromInt(20), Stock: 5}
	lots := []*entity.RewardLot{
		{ID: 1, TransactionID: uintPtr(41), UserID: 1, Points: 200, Status: entity.RewardEarned},
	}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.rewards.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)

	f.orders.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.RewardDiscount.Equal(decimal.NewFromInt(20)) &&
			order.WalletAmount.IsZero()
	})).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 1).Return(nil)
	// No Debit and no ledger.Create: zero owed means zero rows.
	f.rewards.EXPECT().Update(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.ID == 1 && lot.Status == entity.RewardRedeemed
	})).Return(nil)
	f.rewards.EXPECT().Create(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.TransactionID == nil && lot.Points == 1 && lot.Status == entity.RewardEarned
	})).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
		UseWallet:     true,
		RedeemPoints:  200,
	})

	require.NoError(t, err)
	assert.True(t, result.RewardDiscount.Equal(decimal.NewFromInt(20)))
	assert.True(t, result.WalletAmount.IsZero())
	assert.True(t, result.FinalAmount.IsZero())
	assert.Equal(t, 1, result.PointsEarned)
}

// A failure after the order rows are written must surface out of Execute so
// the store rolls everything back, and neither the audit log nor the
// settlement event may fire.
func TestCheckoutService_PlaceOrder_DecrementStockFailureAbortsSettlement(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.Zero}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = 99
	}).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(assert.AnError)
	// No further expectations: any call to the ledger, the cart, the audit
	// log or the publisher after the failed decrement fails the test.

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrement stock")
}

// The order line keeps the price that was current at settlement; a later
// catalog change does not reach back into it.
func TestCheckoutService_PlaceOrder_PriceFrozenAtSettlement(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.Zero}
	cart := &entity.Cart{ID: 3, UserID: 1}
	items := []*entity.CartItem{{ID: 21, CartID: 3, ProductID: 11, Quantity: 2}}
	product := &entity.Product{ID: 11, Name: "Mixer Grinder", Price: decimal.NewFromInt(100), Stock: 5}

	f.accounts.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	f.carts.EXPECT().FindByUser(ctx, uint(1)).Return(cart, nil)
	f.carts.EXPECT().ListItems(ctx, uint(3)).Return(items, nil)
	f.products.EXPECT().FindByID(ctx, uint(11)).Return(product, nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	f.products.EXPECT().DecrementStock(ctx, uint(11), 2).Return(nil)
	f.ledger.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	f.rewards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RewardLot")).Return(nil)
	f.carts.EXPECT().ClearItems(ctx, uint(3)).Return(nil)
	f.logs.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LogEntry")).Return(nil)
	f.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	// Reprice the product after settlement.
	product.Price = decimal.NewFromInt(150)

	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].PriceAtTime.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Order.TotalAmount.Equal(decimal.NewFromInt(200)))
}

func TestCheckoutService_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentMethod("bitcoin"),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestCheckoutService_PlaceOrder_NegativeRedeemPoints(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, false)

	result, err := f.service.PlaceOrder(ctx, 1, &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentWallet,
		RedeemPoints:  -1,
	})

	assert.Nil(t, result)
	require.Error(t, err)
}

func TestCheckoutService_ParseOrderDate_Lenient(t *testing.T) {
	s := &checkoutService{clock: testClock, logger: newDiscardLogger()}

	assert.Equal(t, testClock.now, s.parseOrderDate(""))
	assert.Equal(t, testClock.now, s.parseOrderDate("yesterday-ish"))
	assert.Equal(t,
		time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		s.parseOrderDate("2025-06-15T10:30:00Z"),
	)
}
