package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"walletmart/config"
	"walletmart/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uintPtr(v uint) *uint {
	return &v
}

func newTestConfig(autoConvertRewards bool) *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			AutoConvertRewards: autoConvertRewards,
		},
	}
}

// fixedClock pins Now() so settlement timestamps are assertable.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testClock = fixedClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}

// fakeTxManager runs the transactional closure against a fixed factory with
// no real transaction underneath. Set err to simulate a failed begin.
type fakeTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

// stubFactory hands out whichever repositories a test wires in. Methods for
// repositories a test never touches return nil and will panic loudly if the
// code under test reaches for them unexpectedly.
type stubFactory struct {
	users        repository.UserRepository
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	rewards      repository.RewardRepository
	merchants    repository.MerchantRepository
	products     repository.ProductRepository
	carts        repository.CartRepository
	orders       repository.OrderRepository
	logs         repository.LogRepository
}

func (f *stubFactory) NewUserRepository() repository.UserRepository {
	return f.users
}

func (f *stubFactory) NewAccountRepository() repository.AccountRepository {
	return f.accounts
}

func (f *stubFactory) NewTransactionRepository() repository.TransactionRepository {
	return f.transactions
}

func (f *stubFactory) NewRewardRepository() repository.RewardRepository {
	return f.rewards
}

func (f *stubFactory) NewMerchantRepository() repository.MerchantRepository {
	return f.merchants
}

func (f *stubFactory) NewProductRepository() repository.ProductRepository {
	return f.products
}

func (f *stubFactory) NewCartRepository() repository.CartRepository {
	return f.carts
}

func (f *stubFactory) NewOrderRepository() repository.OrderRepository {
	return f.orders
}

func (f *stubFactory) NewLogRepository() repository.LogRepository {
	return f.logs
}
