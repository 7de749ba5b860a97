package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
	"walletmart/internal/domain/repository"
)

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	Users   int64
	Orders  int64
	Revenue decimal.Decimal
}

// AdminUsecase exposes read-mostly platform administration.
type AdminUsecase interface {
	// GetLogs retrieves the audit trail with actor names, newest first.
	GetLogs(ctx context.Context) ([]*repository.LogWithUser, error)

	// GetStats aggregates user count, order count and completed revenue.
	GetStats(ctx context.Context) (*PlatformStats, error)

	// SetUserStatus blocks or unblocks a user.
	SetUserStatus(ctx context.Context, adminID, userID uint, status entity.UserStatus) error
}
