package middleware

import (
	"net/http"
	"strings"

	"identity/internal/delivery/http/response"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// keyUserID is the echo.Context key the authenticated user ID is stored under.
	keyUserID = "userID"
	// keyRoles is the echo.Context key the authenticated user's roles are stored under.
	keyRoles = "roles"
)

// AuthMiddleware validates bearer tokens. The token is self-contained, so no
// store lookup happens here.
type AuthMiddleware struct {
	issuer service.TokenIssuer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(issuer service.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// Authenticate validates the bearer token and stashes the caller's identity
// on the request context. Failures surface as the domain's unauthorized error
// and reach the client through the centralized error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.issuer.Parse(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token rejected")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds a specific role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).([]string)
			if !ok || !entity.RolesFromStrings(roles).Contains(requiredRole) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role", nil)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok
}
