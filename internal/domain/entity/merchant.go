package entity

import "time"

// Merchant is the seller profile attached to a user with the merchant role.
// Products reference the merchant, not the underlying user.
type Merchant struct {
	ID               uint
	UserID           uint
	BusinessName     string
	BusinessCategory string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
