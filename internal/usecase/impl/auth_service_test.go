package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/auth"
	"identity/internal/infra/persistence/memory"
	"identity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// authServiceFixtures holds dependencies for auth service tests. The
// repository and hasher are real implementations, not mocks, so the tests
// cover the full pipeline down to the stored hash.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	users   repository.UserRepository
	hasher  service.PasswordHasher
	issuer  service.TokenIssuer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	users := memory.NewUserRepository()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	issuer := newTestIssuer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authServiceFixtures{
		service: NewAuthService(users, hasher, issuer, logger),
		users:   users,
		hasher:  hasher,
		issuer:  issuer,
	}
}

func seedUser(t *testing.T, fx authServiceFixtures, email, password string) *entity.User {
	t.Helper()

	hash, err := fx.hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Roles:        entity.Roles{entity.RoleUser},
	}
	require.NoError(t, fx.users.Create(context.Background(), user))

	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	seeded := seedUser(t, fx, "test@example.com", "Password123!")

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := fx.issuer.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Contains(t, claims.Roles, "USER")
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx, "test@example.com", "Password123!")

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "Test@Example.COM",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	cases := []*usecase.LoginInput{
		nil,
		{},
		{Email: "test@example.com"},
		{Password: "Password123!"},
	}
	for _, input := range cases {
		_, err := fx.service.Login(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx, "test@example.com", "Password123!")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	// Unknown email and wrong password stay distinct outcomes.
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx, "test@example.com", "Password123!")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "WrongPassword",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_TokenExpiryBounded(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx, "test@example.com", "Password123!")

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	claims, err := fx.issuer.Parse(out.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
	assert.True(t, claims.ExpiresAt.Before(time.Now().Add(2*time.Hour)))
}
