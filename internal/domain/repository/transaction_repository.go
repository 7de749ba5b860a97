package repository

import (
	"context"

	"walletmart/internal/domain/entity"
)

// TransactionRepository appends and reads the immutable ledger records.
// There is deliberately no update or delete: rows are append-only.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	ListByAccount(ctx context.Context, accountID uint) ([]*entity.Transaction, error)
}
