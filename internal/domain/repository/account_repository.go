package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrInsufficientFunds is returned by Debit when the conditional update
// matches no row, i.e. the balance would have gone negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AccountRepository persists wallet accounts. Credit and Debit are
// single-statement balance mutations; Debit is conditional
// (balance >= amount) so concurrent debits can never overdraw, per the
// store-level concurrency contract.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
	FindByUser(ctx context.Context, userID uint) (*entity.Account, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.Account, error)

	// Credit adds amount to the account balance.
	Credit(ctx context.Context, accountID uint, amount decimal.Decimal) error
	// Debit subtracts amount, failing with ErrInsufficientFunds if the
	// balance cannot cover it. The check and the write are one statement.
	Debit(ctx context.Context, accountID uint, amount decimal.Decimal) error
}
