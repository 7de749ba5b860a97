package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the balance-affecting event a Transaction records.
// The amount is always positive; the direction is implied by the type.
type TransactionType string

const (
	TransactionTopUp            TransactionType = "top_up"
	TransactionPurchase         TransactionType = "purchase"
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionRefund           TransactionType = "refund"
	TransactionRewardRedemption TransactionType = "reward_redemption"
)

// TransactionStatus tracks settlement of a Transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionReversed  TransactionStatus = "reversed"
)

// Transaction is an immutable, append-only record of a balance-affecting
// event on an Account. Purchases settled entirely by an external rail
// (card/upi/cod) are also recorded here with no balance mutation, because the
// transaction id is the stable join key reward lots point at.
type Transaction struct {
	ID        uint
	AccountID uint
	Amount    decimal.Decimal // Always positive.
	Type      TransactionType
	Status    TransactionStatus
	CreatedAt time.Time
}
