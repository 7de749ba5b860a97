package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM. The checkout settlement and every other
// multi-step ledger mutation run inside Execute, which is their all-or-nothing
// boundary.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so that every step of a settlement observes and mutates the same snapshot.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAccountRepository() AccountRepository
	NewTransactionRepository() TransactionRepository
	NewRewardRepository() RewardRepository
	NewMerchantRepository() MerchantRepository
	NewProductRepository() ProductRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
	NewLogRepository() LogRepository
}
