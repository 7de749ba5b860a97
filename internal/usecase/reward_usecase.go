package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
)

// RewardBalance is a user's reward position: the redeemable total plus the
// lots that make it up.
type RewardBalance struct {
	Points int
	Lots   []*entity.RewardLot
}

// RewardRedemption is the result of converting points into wallet balance.
type RewardRedemption struct {
	PointsRedeemed int
	AmountCredited decimal.Decimal
	Transaction    *entity.Transaction
}

// RewardUsecase is the reward engine: it mints point lots on purchases and
// consumes them oldest-first on redemption.
type RewardUsecase interface {
	// GetBalance retrieves the user's earned lots and their point total.
	GetBalance(ctx context.Context, userID uint) (*RewardBalance, error)

	// Redeem converts points into wallet balance at 0.1 currency per point,
	// consuming earned lots oldest-first (lowest id on ties) and splitting
	// the last lot when it is only partially consumed. Fails with
	// InsufficientRewardPoints when the earned total is short.
	Redeem(ctx context.Context, userID uint, points int) (*RewardRedemption, error)
}
