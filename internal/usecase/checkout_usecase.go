package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// PlaceOrderInput is the checkout request. UseWallet opts the wallet into the
// settlement; without it the balance is never touched, whatever the payment
// method. RedeemPoints asks for an explicit reward redemption applied as a
// discount; OrderDate is an optional RFC3339 timestamp accepted leniently (a
// malformed value falls back to now).
type PlaceOrderInput struct {
	PaymentMethod entity.PaymentMethod
	UseWallet     bool
	RedeemPoints  int
	OrderDate     string
}

// PlaceOrderResult is the settlement outcome: the persisted order plus the
// amounts that settled it.
type PlaceOrderResult struct {
	Order          *entity.Order
	Items          []*entity.OrderItem
	Subtotal       decimal.Decimal
	RewardDiscount decimal.Decimal
	WalletAmount   decimal.Decimal
	FinalAmount    decimal.Decimal // Residual owed to the external rail.
	PointsEarned   int
}

// CheckoutUsecase is the settlement core. PlaceOrder turns the user's cart
// into a completed order atomically: stock, wallet balance, reward lots,
// order rows and ledger rows all move inside one store transaction, or none
// of them move at all.
type CheckoutUsecase interface {
	PlaceOrder(ctx context.Context, userID uint, input *PlaceOrderInput) (*PlaceOrderResult, error)
}
