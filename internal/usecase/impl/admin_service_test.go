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
	"walletmart/internal/domain/repository"
	mockRepo "walletmart/internal/mocks/repository"
)

func TestAdminService_GetStats(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	userRepo.EXPECT().Count(ctx).Return(int64(42), nil)
	orderRepo.EXPECT().Stats(ctx).Return(&repository.OrderStats{
		Orders:  17,
		Revenue: decimal.NewFromInt(5400),
	}, nil)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.Users)
	assert.Equal(t, int64(17), stats.Orders)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(5400)))
}

func TestAdminService_GetLogs(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	rows := []*repository.LogWithUser{
		{LogID: 2, UserID: 1, UserName: "Maya Iyer", Action: "checkout", CreatedAt: time.Now()},
		{LogID: 1, UserID: 1, UserName: "Maya Iyer", Action: "top_up", CreatedAt: time.Now().Add(-time.Hour)},
	}
	logRepo.EXPECT().ListWithUserNames(ctx).Return(rows, nil)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	logs, err := service.GetLogs(ctx)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, "Maya Iyer", logs[0].UserName)
}

func TestAdminService_SetUserStatus_BlocksUser(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	user := &entity.User{ID: 8, Status: entity.UserActive}

	userRepo.EXPECT().FindByID(ctx, uint(8)).Return(user, nil)
	userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == 8 && u.Status == entity.UserBlocked
	})).Return(nil)
	logRepo.EXPECT().Append(ctx, mock.MatchedBy(func(entry *entity.LogEntry) bool {
		return entry.UserID == 2 && entry.Action == "set_user_status"
	})).Return(nil)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	err := service.SetUserStatus(ctx, 2, 8, entity.UserBlocked)

	require.NoError(t, err)
}

func TestAdminService_SetUserStatus_NoopWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	user := &entity.User{ID: 8, Status: entity.UserBlocked}

	userRepo.EXPECT().FindByID(ctx, uint(8)).Return(user, nil)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	err := service.SetUserStatus(ctx, 2, 8, entity.UserBlocked)

	require.NoError(t, err)
}

func TestAdminService_SetUserStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	err := service.SetUserStatus(ctx, 2, 8, entity.UserStatus("suspended"))

	require.Error(t, err)
}

func TestAdminService_SetUserStatus_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logRepo := mockRepo.NewMockLogRepository(t)

	userRepo.EXPECT().FindByID(ctx, uint(8)).Return(nil, repository.ErrUserNotFound)

	service := NewAdminService(userRepo, orderRepo, logRepo, testClock, newDiscardLogger())

	err := service.SetUserStatus(ctx, 2, 8, entity.UserBlocked)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
