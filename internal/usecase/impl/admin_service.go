package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type adminService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logRepo   repository.LogRepository
	clock     service.Clock
	logger    *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	logRepo repository.LogRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logRepo:   logRepo,
		clock:     clock,
		logger:    logger,
	}
}

// GetLogs retrieves the audit trail with actor names, newest first.
func (s *adminService) GetLogs(ctx context.Context) ([]*repository.LogWithUser, error) {
	logs, err := s.logRepo.ListWithUserNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return logs, nil
}

// GetStats aggregates user count, order count and completed revenue.
func (s *adminService) GetStats(ctx context.Context) (*usecase.PlatformStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	orderStats, err := s.orderRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate order stats")
	}

	return &usecase.PlatformStats{
		Users:   users,
		Orders:  orderStats.Orders,
		Revenue: orderStats.Revenue,
	}, nil
}

// SetUserStatus blocks or unblocks a user.
func (s *adminService) SetUserStatus(ctx context.Context, adminID, userID uint, status entity.UserStatus) error {
	if status != entity.UserActive && status != entity.UserBlocked {
		return domainerrors.ErrValidationFailed.WithDetails("unknown user status")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if user.Status == status {
		return nil
	}

	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	entry := &entity.LogEntry{
		UserID:      adminID,
		Action:      "set_user_status",
		Description: fmt.Sprintf("Set user #%d status to %s", userID, status),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log",
			slog.String("action", "set_user_status"),
			slog.Any("error", err),
		)
	}

	return nil
}
