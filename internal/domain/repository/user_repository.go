// Package repository declares the persistence interfaces the domain depends
// on, together with the sentinel errors implementations translate store
// misses into.
package repository

import (
	"context"

	"walletmart/internal/domain/entity"
	"walletmart/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists core identities.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
