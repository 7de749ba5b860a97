package postgres

import (
	"context"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new wallet account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByID retrieves an account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUser retrieves the primary wallet account of a user.
func (repo *accountRepository) FindByUser(ctx context.Context, userID uint) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by user")
	}

	return toAccountDomain(&accountM), nil
}

// ListByUser retrieves all accounts of a user, oldest first.
func (repo *accountRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by user")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Credit adds amount to the account balance.
func (repo *accountRepository) Credit(ctx context.Context, accountID uint, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Debit subtracts amount from the account balance. The balance guard is part
// of the UPDATE itself, so a concurrent debit can never drive the balance
// negative: whichever statement runs second sees the already-reduced balance.
func (repo *accountRepository) Debit(ctx context.Context, accountID uint, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND balance >= ?", accountID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit account")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing account from an insufficient balance.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.AccountModel{}).
			Where("id = ?", accountID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check account existence")
		}
		if count == 0 {
			return repository.ErrAccountNotFound
		}

		return repository.ErrInsufficientFunds
	}

	return nil
}

// toAccountDomain converts a GORM model to a domain entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.AccountType(data.AccountType),
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
	}
}

// fromAccountDomain converts a domain entity to a GORM model.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:          data.ID,
		UserID:      data.UserID,
		AccountType: string(data.Type),
		Balance:     data.Balance,
		CreatedAt:   data.CreatedAt,
	}
}
