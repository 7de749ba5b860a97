package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"
)

// ErrMerchantNotFound is returned when no merchant matches the lookup.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository persists seller profiles.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	FindByID(ctx context.Context, id uint) (*entity.Merchant, error)
	FindByUser(ctx context.Context, userID uint) (*entity.Merchant, error)
	Update(ctx context.Context, merchant *entity.Merchant) error
}
