// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"identity/config"
	"identity/internal/domain/entity"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

const defaultTokenTTL = time.Hour

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret []byte        // Process-wide HMAC signing key.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer. It fails fast when the
// signing secret is missing so a misconfigured process never accepts traffic.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	ttl := cfg.Token.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtIssuer{
		secret: []byte(cfg.Token.Secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed HS256 token asserting the user's identity and roles,
// with embedded issuance time and expiry.
func (s *jwtIssuer) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"roles": user.EffectiveRoles().ToStrings(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies a token's signature and expiry and returns its claims.
func (s *jwtIssuer) Parse(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Only accept the signing method the issuer uses.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	return claimsFromMap(mapClaims)
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	claims := &service.Claims{}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "subject missing from token")
	}
	if err := claims.UserID.UnmarshalText([]byte(sub)); err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}
	claims.Subject = sub

	return claims, nil
}
