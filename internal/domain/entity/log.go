package entity

import "time"

// LogEntry is one row of the append-only audit trail. Entries are
// output-only: business logic writes them but never reads them back.
type LogEntry struct {
	ID          uint
	UserID      uint
	Action      string
	Description string
	CreatedAt   time.Time
}
