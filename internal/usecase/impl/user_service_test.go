package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/auth"
	"identity/internal/infra/persistence/memory"
	"identity/internal/infra/validation"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userServiceFixtures holds dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	users   repository.UserRepository
	hasher  service.PasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	users := memory.NewUserRepository()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	validator := validation.NewUserValidator()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return userServiceFixtures{
		service: NewUserService(users, hasher, validator, logger),
		users:   users,
		hasher:  hasher,
	}
}

func validInput(email string) *usecase.UserInput {
	return &usecase.UserInput{
		Name:     "Test User",
		Email:    email,
		Password: "Password123!",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	fx := createTestUserService(t)

	view, err := fx.service.Create(context.Background(), validInput("test@example.com"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "test@example.com", view.Email)
	assert.Equal(t, "Test User", view.Name)
	assert.Equal(t, []string{"USER"}, view.Roles)

	stored, err := fx.users.FindByID(context.Background(), view.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", stored.PasswordHash)
	assert.True(t, fx.hasher.Check("Password123!", stored.PasswordHash))
}

func TestUserService_Create_LowercasesEmail(t *testing.T) {
	fx := createTestUserService(t)

	view, err := fx.service.Create(context.Background(), validInput("Test@Example.COM"))
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", view.Email)

	_, err = fx.users.FindByEmail(context.Background(), "test@example.com")
	assert.NoError(t, err)
}

func TestUserService_Create_ValidationFailed(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Create(context.Background(), &usecase.UserInput{
		Name:     "ab",
		Email:    "not-an-email",
		Password: "short7c",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 3)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	_, err = fx.service.Create(ctx, validInput("test@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	// Case only differs, still the same address.
	_, err = fx.service.Create(ctx, validInput("TEST@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Show(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	view, err := fx.service.Show(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)
	assert.Equal(t, "test@example.com", view.Email)
}

func TestUserService_Show_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	for i := 0; i < repository.PageSize+2; i++ {
		_, err := fx.service.Create(ctx, validInput(fmt.Sprintf("user%02d@example.com", i)))
		require.NoError(t, err)
	}

	first, err := fx.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first, repository.PageSize)

	second, err := fx.service.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestUserService_List_EmptyPage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.List(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNoUsers)

	_, createErr := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, createErr)

	_, err = fx.service.List(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrNoUsers)
}

func TestUserService_Update_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	view, err := fx.service.Update(ctx, created.ID, &usecase.UserInput{
		Name:     "Renamed User",
		Email:    "renamed@example.com",
		Password: "NewPassword123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", view.Name)
	assert.Equal(t, "renamed@example.com", view.Email)

	stored, err := fx.users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, fx.hasher.Check("NewPassword123!", stored.PasswordHash))
	assert.False(t, fx.hasher.Check("Password123!", stored.PasswordHash))
}

func TestUserService_Update_MissingFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	cases := []*usecase.UserInput{
		nil,
		{},
		{Name: "Renamed User", Email: "renamed@example.com"},
		{Name: "Renamed User", Password: "Password123!"},
		{Email: "renamed@example.com", Password: "Password123!"},
	}
	for _, input := range cases {
		_, err := fx.service.Update(ctx, created.ID, input)
		assert.ErrorIs(t, err, domainerrors.ErrFieldsRequired)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), validInput("test@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Update_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, validInput("first@example.com"))
	require.NoError(t, err)
	second, err := fx.service.Create(ctx, validInput("second@example.com"))
	require.NoError(t, err)

	_, err = fx.service.Update(ctx, second.ID, validInput("first@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Delete(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, created.ID))

	_, err = fx.service.Show(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, created.ID), domainerrors.ErrUserNotFound)
}

func TestUserService_Views_NeverExposeHash(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, validInput("test@example.com"))
	require.NoError(t, err)

	// The projection carries identity and roles only.
	view, err := fx.service.Show(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.UserView{
		ID:    created.ID,
		Email: "test@example.com",
		Name:  "Test User",
		Roles: []string{entity.RoleUser.String()},
	}, view)
}
