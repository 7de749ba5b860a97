package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"
)

// ErrRewardLotNotFound is returned when no reward lot matches the lookup.
var ErrRewardLotNotFound = errors.New("reward lot not found")

// RewardRepository persists reward point lots.
type RewardRepository interface {
	Create(ctx context.Context, lot *entity.RewardLot) error
	// ListEarnedByUser returns the user's earned lots ordered oldest first,
	// ties broken by lowest lot id. Redemption depends on this order being
	// deterministic, since it decides which lot gets split.
	ListEarnedByUser(ctx context.Context, userID uint) ([]*entity.RewardLot, error)
	// Update persists the earned->redeemed transition and the truncation
	// performed during a split. No other mutation is legal.
	Update(ctx context.Context, lot *entity.RewardLot) error
}
