package impl

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	mockRepo "walletmart/internal/mocks/repository"
)

func TestRewardService_GetBalance(t *testing.T) {
	ctx := context.Background()
	lots := []*entity.RewardLot{
		{ID: 1, UserID: 1, Points: 10, Status: entity.RewardEarned},
		{ID: 2, UserID: 1, Points: 12, Status: entity.RewardEarned},
	}

	rewardRepo := mockRepo.NewMockRewardRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{}}

	rewardRepo.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)

	service := NewRewardService(txManager, rewardRepo, accountRepo, testClock, newDiscardLogger())

	balance, err := service.GetBalance(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 22, balance.Points)
	assert.Len(t, balance.Lots, 2)
}

// Redeeming 15 points against lots of [10, 12] retires the first lot whole
// and splits the second: 5 consumed, a fresh earned lot carries the 7
// left over at the split lot's original timestamp.
func TestRewardService_Redeem_SplitsPartialLot(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{ID: 7, UserID: 1, Balance: decimal.NewFromInt(100)}
	mintedAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	lots := []*entity.RewardLot{
		{ID: 1, TransactionID: uintPtr(41), UserID: 1, Points: 10, Status: entity.RewardEarned, CreatedAt: mintedAt.Add(-time.Hour)},
		{ID: 2, TransactionID: uintPtr(42), UserID: 1, Points: 12, Status: entity.RewardEarned, CreatedAt: mintedAt},
	}

	rewardRepo := mockRepo.NewMockRewardRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	txRewardRepo := mockRepo.NewMockRewardRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txTxRepo := mockRepo.NewMockTransactionRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{
		rewards:      txRewardRepo,
		accounts:     txAccountRepo,
		transactions: txTxRepo,
	}}

	accountRepo.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	txRewardRepo.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)
	txRewardRepo.EXPECT().Update(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.ID == 1 && lot.Points == 10 && lot.Status == entity.RewardRedeemed
	})).Return(nil)
	txRewardRepo.EXPECT().Update(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.ID == 2 && lot.Points == 5 && lot.Status == entity.RewardRedeemed
	})).Return(nil)
	txRewardRepo.EXPECT().Create(ctx, mock.MatchedBy(func(lot *entity.RewardLot) bool {
		return lot.TransactionID != nil && *lot.TransactionID == 42 &&
			lot.Points == 7 &&
			lot.Status == entity.RewardEarned &&
			lot.CreatedAt.Equal(mintedAt)
	})).Return(nil)
	// 15 points at 0.1 each.
	txAccountRepo.EXPECT().Credit(ctx, uint(7), mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromFloat(1.5))
	})).Return(nil)
	txTxRepo.EXPECT().Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionRewardRedemption && tx.Amount.Equal(decimal.NewFromFloat(1.5))
	})).Return(nil)

	service := NewRewardService(txManager, rewardRepo, accountRepo, testClock, newDiscardLogger())

	redemption, err := service.Redeem(ctx, 1, 15)

	require.NoError(t, err)
	assert.Equal(t, 15, redemption.PointsRedeemed)
	assert.True(t, redemption.AmountCredited.Equal(decimal.NewFromFloat(1.5)))
	assert.Equal(t, entity.TransactionRewardRedemption, redemption.Transaction.Type)
}

func TestRewardService_Redeem_InsufficientPoints(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{ID: 7, UserID: 1}
	lots := []*entity.RewardLot{
		{ID: 1, UserID: 1, Points: 4, Status: entity.RewardEarned},
	}

	rewardRepo := mockRepo.NewMockRewardRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	txRewardRepo := mockRepo.NewMockRewardRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{rewards: txRewardRepo}}

	accountRepo.EXPECT().FindByUser(ctx, uint(1)).Return(account, nil)
	txRewardRepo.EXPECT().ListEarnedByUser(ctx, uint(1)).Return(lots, nil)

	service := NewRewardService(txManager, rewardRepo, accountRepo, testClock, newDiscardLogger())

	redemption, err := service.Redeem(ctx, 1, 15)

	assert.Nil(t, redemption)
	require.Error(t, err)
	assert.Equal(t, "Insufficient reward points. Available: 4", err.Error())
}

func TestRewardService_Redeem_InvalidPoints(t *testing.T) {
	ctx := context.Background()
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	txManager := &fakeTxManager{factory: &stubFactory{}}

	service := NewRewardService(txManager, rewardRepo, accountRepo, testClock, newDiscardLogger())

	for _, points := range []int{0, -5} {
		redemption, err := service.Redeem(ctx, 1, points)

		assert.Nil(t, redemption)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestEarnedPoints(t *testing.T) {
	cases := []struct {
		subtotal string
		want     int
	}{
		{"200", 10},
		{"199", 9},
		{"19", 0},
		{"20", 1},
		{"0", 0},
	}
	for _, tc := range cases {
		subtotal, err := decimal.NewFromString(tc.subtotal)
		require.NoError(t, err)
		assert.Equal(t, tc.want, earnedPoints(subtotal), "subtotal %s", tc.subtotal)
	}
}

func TestPointsValue(t *testing.T) {
	assert.True(t, pointsValue(15).Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, pointsValue(0).Equal(decimal.Zero))
}
