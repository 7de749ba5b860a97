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

// Reward policy: purchases mint floor(5%) of the pre-discount subtotal as
// points, and one point is worth 0.1 currency on redemption.
var (
	rewardEarnRate   = decimal.New(5, -2) // 0.05
	rewardPointValue = decimal.New(1, -1) // 0.10
)

// earnedPoints computes the points minted for a purchase subtotal.
func earnedPoints(subtotal decimal.Decimal) int {
	return int(subtotal.Mul(rewardEarnRate).IntPart())
}

// pointsValue converts a point count to its currency value.
func pointsValue(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Mul(rewardPointValue)
}

// consumeRewardLots retires `points` from the user's earned lots,
// oldest-first (lowest id breaking ties). Whole lots are marked redeemed; a
// partially consumed lot is truncated to the consumed portion and a new
// earned lot keeps the remainder at the original lot's timestamp, so it does
// not lose its place in the queue.
func consumeRewardLots(ctx context.Context, rewardRepo repository.RewardRepository, userID uint, points int) error {
	lots, err := rewardRepo.ListEarnedByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list reward lots")
	}

	available := 0
	for _, lot := range lots {
		available += lot.Points
	}
	if available < points {
		return domainerrors.ErrInsufficientRewardPoints.
			WithMessage(fmt.Sprintf("Insufficient reward points. Available: %d", available))
	}

	remaining := points
	for _, lot := range lots {
		if remaining == 0 {
			break
		}

		if lot.Points <= remaining {
			remaining -= lot.Points
			lot.Status = entity.RewardRedeemed
			if err := rewardRepo.Update(ctx, lot); err != nil {
				return errors.Wrap(err, "failed to redeem reward lot")
			}

			continue
		}

		// Split: truncate this lot to the consumed portion and carry the
		// leftover in a fresh earned lot.
		leftover := lot.Points - remaining
		lot.Points = remaining
		lot.Status = entity.RewardRedeemed
		if err := rewardRepo.Update(ctx, lot); err != nil {
			return errors.Wrap(err, "failed to redeem reward lot")
		}

		remainder := &entity.RewardLot{
			TransactionID: lot.TransactionID,
			UserID:        userID,
			Points:        leftover,
			Status:        entity.RewardEarned,
			CreatedAt:     lot.CreatedAt,
		}
		if err := rewardRepo.Create(ctx, remainder); err != nil {
			return errors.Wrap(err, "failed to create remainder reward lot")
		}

		remaining = 0
	}

	return nil
}

type rewardService struct {
	txManager   repository.TransactionManager
	rewardRepo  repository.RewardRepository
	accountRepo repository.AccountRepository
	clock       service.Clock
	logger      *slog.Logger
}

// NewRewardService creates a new reward service instance
func NewRewardService(
	txManager repository.TransactionManager,
	rewardRepo repository.RewardRepository,
	accountRepo repository.AccountRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.RewardUsecase {
	return &rewardService{
		txManager:   txManager,
		rewardRepo:  rewardRepo,
		accountRepo: accountRepo,
		clock:       clock,
		logger:      logger,
	}
}

// GetBalance retrieves the user's earned lots and their point total.
func (s *rewardService) GetBalance(ctx context.Context, userID uint) (*usecase.RewardBalance, error) {
	lots, err := s.rewardRepo.ListEarnedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reward lots")
	}

	balance := &usecase.RewardBalance{Lots: lots}
	for _, lot := range lots {
		balance.Points += lot.Points
	}

	return balance, nil
}

// Redeem converts points into wallet balance at 0.1 currency per point.
func (s *rewardService) Redeem(ctx context.Context, userID uint, points int) (*usecase.RewardRedemption, error) {
	if points <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	account, err := s.accountRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	amount := pointsValue(points)
	transaction := &entity.Transaction{
		AccountID: account.ID,
		Amount:    amount,
		Type:      entity.TransactionRewardRedemption,
		Status:    entity.TransactionCompleted,
		CreatedAt: s.clock.Now(),
	}

	// Lot retirement, wallet credit and the ledger row commit together.
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := consumeRewardLots(ctx, f.NewRewardRepository(), userID, points); err != nil {
			return err
		}
		if err := f.NewAccountRepository().Credit(ctx, account.ID, amount); err != nil {
			return errors.Wrap(err, "failed to credit account")
		}

		return f.NewTransactionRepository().Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RewardRedemption{
		PointsRedeemed: points,
		AmountCredited: amount,
		Transaction:    transaction,
	}, nil
}
