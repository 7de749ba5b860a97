package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"walletmart/config"
	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type checkoutService struct {
	txManager repository.TransactionManager
	logRepo   repository.LogRepository
	publisher service.EventPublisher
	clock     service.Clock
	config    *config.Config
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	txManager repository.TransactionManager,
	logRepo repository.LogRepository,
	publisher service.EventPublisher,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		logRepo:   logRepo,
		publisher: publisher,
		clock:     clock,
		config:    cfg,
		logger:    logger,
	}
}

// PlaceOrder settles the user's cart into a completed order. Every mutation
// from stock decrement to cart clearing happens inside one store
// transaction; if any step fails, nothing moved.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID uint, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
	switch input.PaymentMethod {
	case entity.PaymentWallet, entity.PaymentCard, entity.PaymentUPI, entity.PaymentCashOnDelivery:
	default:
		return nil, domainerrors.ErrInvalidPaymentMethod
	}
	if input.RedeemPoints < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("redeem points cannot be negative")
	}

	orderedAt := s.parseOrderDate(input.OrderDate)

	result := &usecase.PlaceOrderResult{}
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return s.settle(ctx, f, userID, input, orderedAt, result)
	})
	if err != nil {
		return nil, err
	}

	// The order is committed. Audit and event publishing are best-effort
	// from here on; their failure must not fail a settled order.
	s.audit(ctx, userID, result)
	s.publish(ctx, result)

	return result, nil
}

// settle runs the settlement steps against transaction-bound repositories.
func (s *checkoutService) settle(
	ctx context.Context,
	f repository.RepositoryFactory,
	userID uint,
	input *usecase.PlaceOrderInput,
	orderedAt time.Time,
	result *usecase.PlaceOrderResult,
) error {
	account, err := f.NewAccountRepository().FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account")
	}

	// Load the cart. No cart and an empty cart read the same to checkout.
	cartRepo := f.NewCartRepository()
	cart, err := cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrEmptyCart
		}

		return errors.Wrap(err, "failed to find cart")
	}
	items, err := cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list cart items")
	}
	if len(items) == 0 {
		return domainerrors.ErrEmptyCart
	}

	// Re-validate stock against current values and price the cart. Stock may
	// have moved since the items were added; the advisory check at cart-add
	// time counts for nothing here.
	productRepo := f.NewProductRepository()
	products := make(map[uint]*entity.Product, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product, err := productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		if product.Stock < item.Quantity {
			return domainerrors.ErrOutOfStock.
				WithMessage(fmt.Sprintf("Not enough stock for %s. Available: %d", product.Name, product.Stock))
		}

		products[item.ProductID] = product
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// Reward discount. Availability is checked here; the lots themselves are
	// retired after the purchase transaction exists.
	rewardRepo := f.NewRewardRepository()
	rewardDiscount := decimal.Zero
	if input.RedeemPoints > 0 {
		lots, err := rewardRepo.ListEarnedByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list reward lots")
		}
		available := 0
		for _, lot := range lots {
			available += lot.Points
		}
		if available < input.RedeemPoints {
			return domainerrors.ErrInsufficientRewardPoints.
				WithMessage(fmt.Sprintf("Insufficient reward points. Available: %d", available))
		}

		rewardDiscount = pointsValue(input.RedeemPoints)
		if rewardDiscount.GreaterThan(subtotal) {
			rewardDiscount = subtotal
		}
	}

	// Wallet application and the residual owed to the external rail. The
	// wallet contributes only when the caller opted in; holding a balance is
	// not consent to spend it.
	payable := subtotal.Sub(rewardDiscount)
	walletAmount := decimal.Zero
	if input.UseWallet {
		walletAmount = payable
		if account.Balance.LessThan(walletAmount) {
			walletAmount = account.Balance
		}
	}
	finalAmount := payable.Sub(walletAmount)

	if finalAmount.IsPositive() && !input.PaymentMethod.CoversResidual() {
		if input.PaymentMethod == entity.PaymentWallet {
			return domainerrors.ErrInsufficientWalletBalance
		}

		return domainerrors.ErrInvalidPaymentMethod
	}

	// Persist the order snapshot with frozen prices.
	order := &entity.Order{
		UserID:         userID,
		AccountID:      account.ID,
		TotalAmount:    subtotal,
		WalletAmount:   walletAmount,
		RewardDiscount: rewardDiscount,
		PaymentMethod:  input.PaymentMethod,
		Status:         entity.OrderCompleted,
		CreatedAt:      orderedAt,
		UpdatedAt:      orderedAt,
	}
	orderRepo := f.NewOrderRepository()
	if err := orderRepo.Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	orderItems := make([]*entity.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, &entity.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: products[item.ProductID].Price,
			CreatedAt:   orderedAt,
		})
	}
	if err := orderRepo.CreateItems(ctx, orderItems); err != nil {
		return errors.Wrap(err, "failed to create order items")
	}

	// Reserve stock. The conditional update is the authoritative check; a
	// concurrent order that beat us to the last unit surfaces here.
	for _, item := range items {
		if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrOutOfStock.
					WithMessage(fmt.Sprintf("Not enough stock for %s", products[item.ProductID].Name))
			}

			return errors.Wrap(err, "failed to decrement stock")
		}
	}

	// Debit exactly the wallet portion.
	if walletAmount.IsPositive() {
		if err := f.NewAccountRepository().Debit(ctx, account.ID, walletAmount); err != nil {
			if errors.Is(err, repository.ErrInsufficientFunds) {
				return domainerrors.ErrInsufficientWalletBalance
			}

			return errors.Wrap(err, "failed to debit account")
		}
	}

	// One purchase transaction records the settled amount, and is the join
	// key the earned reward lot points at. A settlement fully covered by the
	// reward discount owes nothing, so it gets no ledger row; transaction
	// amounts stay strictly positive.
	txRepo := f.NewTransactionRepository()
	var purchaseID *uint
	if payable.IsPositive() {
		purchase := &entity.Transaction{
			AccountID: account.ID,
			Amount:    payable,
			Type:      entity.TransactionPurchase,
			Status:    entity.TransactionCompleted,
			CreatedAt: orderedAt,
		}
		if err := txRepo.Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to create purchase transaction")
		}
		purchaseID = &purchase.ID
	}

	// Retire the redeemed lots. Their value was already applied as a
	// discount, so no wallet credit happens here.
	if input.RedeemPoints > 0 {
		if err := consumeRewardLots(ctx, rewardRepo, userID, input.RedeemPoints); err != nil {
			return err
		}
	}

	// Mint reward points on the pre-discount subtotal, except for COD.
	pointsEarned := 0
	if input.PaymentMethod != entity.PaymentCashOnDelivery {
		pointsEarned = earnedPoints(subtotal)
	}
	if pointsEarned > 0 {
		lot := &entity.RewardLot{
			TransactionID: purchaseID,
			UserID:        userID,
			Points:        pointsEarned,
			Status:        entity.RewardEarned,
			CreatedAt:     orderedAt,
		}
		if err := rewardRepo.Create(ctx, lot); err != nil {
			return errors.Wrap(err, "failed to create reward lot")
		}

		if s.autoConvertRewards() {
			// Policy: convert the fresh lot straight into wallet balance.
			lot.Status = entity.RewardRedeemed
			if err := rewardRepo.Update(ctx, lot); err != nil {
				return errors.Wrap(err, "failed to convert reward lot")
			}
			converted := pointsValue(pointsEarned)
			if err := f.NewAccountRepository().Credit(ctx, account.ID, converted); err != nil {
				return errors.Wrap(err, "failed to credit converted rewards")
			}
			conversion := &entity.Transaction{
				AccountID: account.ID,
				Amount:    converted,
				Type:      entity.TransactionRewardRedemption,
				Status:    entity.TransactionCompleted,
				CreatedAt: orderedAt,
			}
			if err := txRepo.Create(ctx, conversion); err != nil {
				return errors.Wrap(err, "failed to create conversion transaction")
			}
		}
	}

	// The cart burned down to the order; clear it as the last mutation.
	if err := cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	result.Order = order
	result.Items = orderItems
	result.Subtotal = subtotal
	result.RewardDiscount = rewardDiscount
	result.WalletAmount = walletAmount
	result.FinalAmount = finalAmount
	result.PointsEarned = pointsEarned

	return nil
}

func (s *checkoutService) autoConvertRewards() bool {
	return s.config != nil && s.config.Checkout != nil && s.config.Checkout.AutoConvertRewards
}

// parseOrderDate accepts a caller-supplied RFC3339 timestamp leniently;
// anything unparseable falls back to the current time.
func (s *checkoutService) parseOrderDate(raw string) time.Time {
	if raw == "" {
		return s.clock.Now()
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.logger.Debug("unparseable order date, using current time",
			slog.String("order_date", raw),
		)

		return s.clock.Now()
	}

	return parsed
}

func (s *checkoutService) audit(ctx context.Context, userID uint, result *usecase.PlaceOrderResult) {
	entry := &entity.LogEntry{
		UserID:      userID,
		Action:      "checkout",
		Description: fmt.Sprintf("Placed order #%d for %s", result.Order.ID, result.Subtotal.StringFixed(2)),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log for settled order",
			slog.Uint64("order_id", uint64(result.Order.ID)),
			slog.Any("error", err),
		)
	}
}

func (s *checkoutService) publish(ctx context.Context, result *usecase.PlaceOrderResult) {
	event := &service.SettlementEvent{
		OrderID:       result.Order.ID,
		UserID:        result.Order.UserID,
		TotalAmount:   result.Order.TotalAmount.StringFixed(2),
		WalletAmount:  result.WalletAmount.StringFixed(2),
		RewardPoints:  result.PointsEarned,
		PaymentMethod: string(result.Order.PaymentMethod),
	}
	if err := s.publisher.PublishSettlementEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish settlement event",
			slog.Uint64("order_id", uint64(result.Order.ID)),
			slog.Any("error", err),
		)
	}
}
