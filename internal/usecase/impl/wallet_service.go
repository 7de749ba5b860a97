// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type walletService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	logRepo     repository.LogRepository
	clock       service.Clock
	logger      *slog.Logger
}

// NewWalletService creates a new wallet service instance
func NewWalletService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
	logRepo repository.LogRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.WalletUsecase {
	return &walletService{
		txManager:   txManager,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		logRepo:     logRepo,
		clock:       clock,
		logger:      logger,
	}
}

// TopUp credits amount to the user's wallet with a top_up transaction.
func (s *walletService) TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	account, err := s.accountRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	transaction := &entity.Transaction{
		AccountID: account.ID,
		Amount:    amount,
		Type:      entity.TransactionTopUp,
		Status:    entity.TransactionCompleted,
		CreatedAt: s.clock.Now(),
	}

	// Balance mutation and ledger row land together or not at all.
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().Credit(ctx, account.ID, amount); err != nil {
			return errors.Wrap(err, "failed to credit account")
		}

		return f.NewTransactionRepository().Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, "top_up", fmt.Sprintf("Added %s to wallet", amount.StringFixed(2)))

	return transaction, nil
}

// Withdraw debits amount from the user's wallet with a withdrawal transaction.
func (s *walletService) Withdraw(ctx context.Context, userID uint, amount decimal.Decimal) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	account, err := s.accountRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	transaction := &entity.Transaction{
		AccountID: account.ID,
		Amount:    amount,
		Type:      entity.TransactionWithdrawal,
		Status:    entity.TransactionCompleted,
		CreatedAt: s.clock.Now(),
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().Debit(ctx, account.ID, amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientFunds) {
				return domainerrors.ErrInsufficientFunds
			}

			return errors.Wrap(err, "failed to debit account")
		}

		return f.NewTransactionRepository().Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, "withdrawal", fmt.Sprintf("Withdrew %s from wallet", amount.StringFixed(2)))

	return transaction, nil
}

// GetAccounts retrieves the user's wallet accounts.
func (s *walletService) GetAccounts(ctx context.Context, userID uint) ([]*entity.Account, error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetTransactions retrieves the ledger of one of the user's accounts.
func (s *walletService) GetTransactions(ctx context.Context, userID, accountID uint) ([]*entity.Transaction, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	// Scope to the owner; report not-found rather than forbidden so account
	// ids don't leak.
	if account.UserID != userID {
		return nil, domainerrors.ErrAccountNotFound
	}

	transactions, err := s.txRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// audit appends an audit row after the money has moved. Auditing is
// best-effort: a log failure must not undo a committed ledger change.
func (s *walletService) audit(ctx context.Context, userID uint, action, description string) {
	entry := &entity.LogEntry{
		UserID:      userID,
		Action:      action,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
