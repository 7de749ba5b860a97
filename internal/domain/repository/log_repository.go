package repository

import (
	"context"
	"time"

	"walletmart/internal/domain/entity"
)

// LogWithUser is the admin read model: an audit row joined with the actor's
// display name.
type LogWithUser struct {
	LogID       uint
	UserID      uint
	UserName    string
	Action      string
	Description string
	CreatedAt   time.Time
}

// LogRepository appends and reads the audit trail. Append is the only write;
// business logic never reads logs back.
type LogRepository interface {
	Append(ctx context.Context, entry *entity.LogEntry) error
	ListWithUserNames(ctx context.Context) ([]*LogWithUser, error)
}
