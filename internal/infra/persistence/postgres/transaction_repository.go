package postgres

import (
	"context"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements the repository.TransactionRepository interface.
// The ledger is append-only: there is deliberately no update or delete here.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a ledger row.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	// Update the entity with generated values
	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt

	return nil
}

// ListByAccount retrieves the ledger of an account, newest first.
func (repo *transactionRepository) ListByAccount(ctx context.Context, accountID uint) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by account")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// toTransactionDomain converts a GORM model to a domain entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:        data.ID,
		AccountID: data.AccountID,
		Amount:    data.Amount,
		Type:      entity.TransactionType(data.TransactionType),
		Status:    entity.TransactionStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

// fromTransactionDomain converts a domain entity to a GORM model.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:              data.ID,
		AccountID:       data.AccountID,
		Amount:          data.Amount,
		TransactionType: string(data.Type),
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}
