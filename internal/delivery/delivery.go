// Package delivery defines the contract for long-lived serving components
// (HTTP servers, consumers) managed by the application lifecycle.
package delivery

import "context"

// Delivery is a component that serves until its context is cancelled or the
// process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
