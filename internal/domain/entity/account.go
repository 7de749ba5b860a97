package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes customer wallets from merchant settlement accounts.
type AccountType string

const (
	AccountUser     AccountType = "user"
	AccountMerchant AccountType = "merchant"
)

// Account is a wallet belonging to a user. Balance must stay >= 0 after every
// mutation and is only ever changed through the wallet ledger operations, each
// of which appends exactly one Transaction row.
type Account struct {
	ID        uint
	UserID    uint
	Type      AccountType
	Balance   decimal.Decimal // decimal(10,2); never negative.
	CreatedAt time.Time
}
