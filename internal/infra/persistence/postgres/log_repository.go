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

// logRepository implements the repository.LogRepository interface.
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository is the constructor for logRepository.
func NewLogRepository(db *gorm.DB) repository.LogRepository {
	return &logRepository{
		db: db,
	}
}

// Append writes an audit row.
func (repo *logRepository) Append(ctx context.Context, entry *entity.LogEntry) error {
	logM := fromLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit log")
	}

	entry.ID = logM.ID
	entry.CreatedAt = logM.CreatedAt

	return nil
}

// ListWithUserNames retrieves the audit trail joined with actor names,
// newest first.
func (repo *logRepository) ListWithUserNames(ctx context.Context) ([]*repository.LogWithUser, error) {
	var rows []*repository.LogWithUser

	if err := repo.db.WithContext(ctx).
		Model(&model.LogModel{}).
		Select("logs.id AS log_id, logs.user_id, users.full_name AS user_name, logs.action, logs.description, logs.created_at").
		Joins("JOIN users ON users.id = logs.user_id").
		Order("logs.created_at DESC, logs.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return rows, nil
}

// fromLogDomain converts a domain entity to a GORM model.
func fromLogDomain(data *entity.LogEntry) *model.LogModel {
	return &model.LogModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Action:      data.Action,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
