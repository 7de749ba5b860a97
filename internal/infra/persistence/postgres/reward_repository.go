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

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{
		db: db,
	}
}

// Create persists a new reward lot.
func (repo *rewardRepository) Create(ctx context.Context, lot *entity.RewardLot) error {
	lotM := fromRewardDomain(lot)

	if err := repo.db.WithContext(ctx).Create(lotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward lot")
	}

	// Update the entity with generated values
	lot.ID = lotM.ID
	lot.CreatedAt = lotM.CreatedAt

	return nil
}

// ListEarnedByUser retrieves the user's spendable lots, oldest first with the
// lowest id breaking ties. Redemption consumes lots in exactly this order, so
// the ordering is part of the contract, not a presentation choice.
func (repo *rewardRepository) ListEarnedByUser(ctx context.Context, userID uint) ([]*entity.RewardLot, error) {
	var lotModels []*model.RewardPointModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.RewardEarned)).
		Order("created_at ASC, id ASC").
		Find(&lotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list earned reward lots")
	}

	lots := make([]*entity.RewardLot, 0, len(lotModels))
	for _, lotM := range lotModels {
		lots = append(lots, toRewardDomain(lotM))
	}

	return lots, nil
}

// Update persists changes to a reward lot (points truncation and status).
func (repo *rewardRepository) Update(ctx context.Context, lot *entity.RewardLot) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardPointModel{}).
		Where("id = ?", lot.ID).
		Updates(map[string]any{
			"points": lot.Points,
			"status": string(lot.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reward lot")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRewardLotNotFound
	}

	return nil
}

// toRewardDomain converts a GORM model to a domain entity.
func toRewardDomain(data *model.RewardPointModel) *entity.RewardLot {
	return &entity.RewardLot{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		UserID:        data.UserID,
		Points:        data.Points,
		Status:        entity.RewardStatus(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}

// fromRewardDomain converts a domain entity to a GORM model.
func fromRewardDomain(data *entity.RewardLot) *model.RewardPointModel {
	return &model.RewardPointModel{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		UserID:        data.UserID,
		Points:        data.Points,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}
