// Package lifecycle holds shared timings for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop of long-lived components.
const DefaultTimeout = 10 * time.Second
