package service

import (
	"identity/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued identity tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed, time-bounded identity tokens.
// Tokens are self-contained: any holder of the verification key can check
// signature, expiry, subject, and roles without consulting the store.
type TokenIssuer interface {
	// Issue creates a signed token asserting the user's identity and roles.
	// It never fails for a valid user and does not consult the store.
	Issue(user *entity.User) (string, error)

	// Parse verifies a token's signature and expiry and returns its claims.
	Parse(tokenString string) (*Claims, error)
}
