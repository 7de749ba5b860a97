package service

import "time"

// Clock abstracts wall-clock access so settlement timestamps are testable.
type Clock interface {
	Now() time.Time
}
