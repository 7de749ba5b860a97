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

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// Create persists a new merchant profile.
func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WithMessage("user already has a merchant profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	// Update the entity with generated values
	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

// FindByID retrieves a merchant by its unique ID.
func (repo *merchantRepository) FindByID(ctx context.Context, id uint) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindByUser retrieves the merchant profile owned by a user.
func (repo *merchantRepository) FindByUser(ctx context.Context, userID uint) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by user")
	}

	return toMerchantDomain(&merchantM), nil
}

// Update persists changes to a merchant profile.
func (repo *merchantRepository) Update(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", merchantM.ID).
		Updates(map[string]any{
			"business_name":     merchantM.BusinessName,
			"business_category": merchantM.BusinessCategory,
			"contact_name":      merchantM.ContactName,
			"contact_email":     merchantM.ContactEmail,
			"contact_phone":     merchantM.ContactPhone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update merchant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// toMerchantDomain converts a GORM model to a domain entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	return &entity.Merchant{
		ID:               data.ID,
		UserID:           data.UserID,
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		ContactName:      data.ContactName,
		ContactEmail:     data.ContactEmail,
		ContactPhone:     data.ContactPhone,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromMerchantDomain converts a domain entity to a GORM model.
func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	return &model.MerchantModel{
		ID:               data.ID,
		UserID:           data.UserID,
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		ContactName:      data.ContactName,
		ContactEmail:     data.ContactEmail,
		ContactPhone:     data.ContactPhone,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
