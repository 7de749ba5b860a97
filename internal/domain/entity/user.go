// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserRole determines which surfaces of the platform a user may operate.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleMerchant UserRole = "merchant"
	RoleSupport  UserRole = "support"
)

// UserStatus gates whether a user may authenticate and transact.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

// User is the core identity in the system. A user owns zero or more wallet
// Accounts, at most one Cart, at most one Merchant profile, and many Orders.
type User struct {
	ID           uint       // Auto-incremented primary key.
	Email        string     // Login identifier, unique across the platform.
	FullName     string     // Display name.
	Role         UserRole   // customer / admin / merchant / support.
	Status       UserStatus // active / blocked.
	Phone        string     // Optional contact number.
	PasswordHash string     // Bcrypt hash; never leaves the domain layer.
	ProfileImage string     // URL supplied by the file storage collaborator.
	CreatedAt    time.Time
}
