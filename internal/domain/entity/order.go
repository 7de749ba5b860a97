package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod tags how the non-wallet remainder of an order is settled.
// External rails are recorded as strings only; there is no gateway
// integration.
type PaymentMethod string

const (
	PaymentWallet         PaymentMethod = "wallet"
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// CoversResidual reports whether the method can settle an amount the wallet
// and reward discount did not cover.
func (m PaymentMethod) CoversResidual() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

// OrderStatus is the order lifecycle. Orders settle immediately as completed;
// completed and cancelled are terminal for cancellation purposes.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order captures a checkout snapshot: the totals and discounts computed at
// settlement time, independent of later catalog changes.
type Order struct {
	ID             uint
	UserID         uint
	AccountID      uint
	TotalAmount    decimal.Decimal // Subtotal before discounts.
	WalletAmount   decimal.Decimal // Portion paid from the wallet.
	RewardDiscount decimal.Decimal // Currency value of redeemed points.
	PaymentMethod  PaymentMethod
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItem freezes one order line. PriceAtTime is never updated after
// creation, whatever happens to the product's live price.
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	Quantity    int
	PriceAtTime decimal.Decimal
	CreatedAt   time.Time
}
