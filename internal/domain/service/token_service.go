package service

import (
	"github.com/golang-jwt/jwt/v5"

	"walletmart/internal/domain/entity"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uint
	Role   entity.UserRole
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed access token for a given user.
	GenerateToken(userID uint, role entity.UserRole) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
