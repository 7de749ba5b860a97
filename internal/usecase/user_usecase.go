package usecase

import (
	"context"
	"io"

	"walletmart/internal/domain/entity"
)

// RegisterInput carries a new user registration.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Role     entity.UserRole
}

// UpdateProfileInput carries optional profile changes; nil fields are left
// unchanged.
type UpdateProfileInput struct {
	FullName *string
	Phone    *string
}

// MerchantInput carries merchant profile fields.
type MerchantInput struct {
	BusinessName     string
	BusinessCategory string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
}

// AuthResult is a signed token plus the authenticated user.
type AuthResult struct {
	Token string
	User  *entity.User
}

// UserUsecase handles registration, login and profile management.
type UserUsecase interface {
	// Register creates a user with a hashed password and an empty wallet
	// account, and returns a signed token.
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies credentials and returns a signed token. Blocked users
	// are rejected even with a correct password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of input.
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*entity.User, error)

	// UploadProfileImage stores the image and records its URL on the profile.
	UploadProfileImage(ctx context.Context, userID uint, filename string, content io.Reader) (string, error)

	// RegisterMerchant creates a merchant profile for the user and promotes
	// their role.
	RegisterMerchant(ctx context.Context, userID uint, input *MerchantInput) (*entity.Merchant, error)
}
