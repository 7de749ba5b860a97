// Package usecase defines the application-facing interfaces of the business
// layer. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// WalletUsecase is the account ledger. Every balance change it performs is
// paired with exactly one completed Transaction row inside one store
// transaction.
type WalletUsecase interface {
	// TopUp credits amount to the user's wallet with a top_up transaction.
	TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (*entity.Transaction, error)

	// Withdraw debits amount from the user's wallet with a withdrawal
	// transaction. Fails with InsufficientFunds if the balance can't cover it.
	Withdraw(ctx context.Context, userID uint, amount decimal.Decimal) (*entity.Transaction, error)

	// GetAccounts retrieves the user's wallet accounts.
	GetAccounts(ctx context.Context, userID uint) ([]*entity.Account, error)

	// GetTransactions retrieves the ledger of one of the user's accounts,
	// newest first. The account must belong to the user.
	GetTransactions(ctx context.Context, userID, accountID uint) ([]*entity.Transaction, error)
}
