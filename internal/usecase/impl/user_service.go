package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users     repository.UserRepository
	hasher    service.PasswordHasher
	validator service.UserValidator
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	validator service.UserValidator,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:     users,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the public views for one page of users. An empty page is
// reported as "no users found" rather than an empty success.
func (srv *userService) List(ctx context.Context, page int) ([]*usecase.UserView, error) {
	if page < 1 {
		page = 1
	}

	users, err := srv.users.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrNoUsers.WrapMessage("list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return views, nil
}

// Create orchestrates user creation: validate, hash, persist, project.
func (srv *userService) Create(ctx context.Context, input *usecase.UserInput) (*usecase.UserView, error) {
	if input == nil {
		input = &usecase.UserInput{}
	}

	email := strings.ToLower(input.Email)
	srv.log(ctx).Info("Creating user", "email", email)

	if fieldErrs := srv.validator.Validate(service.UserCandidate{
		Email:    email,
		Name:     input.Name,
		Password: input.Password,
	}); len(fieldErrs) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrs)
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hashed,
		Roles:        entity.Roles{entity.RoleUser},
	}

	if err := srv.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("create user")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Debug("User created", "userID", user.ID)

	return usecase.NewUserView(user), nil
}

// Show returns the public view of a single user.
func (srv *userService) Show(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("show user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewUserView(user), nil
}

// Update performs a full replace of name, email, and password. All three must
// be supplied; partial patches are not supported.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UserInput) (*usecase.UserView, error) {
	if input == nil || input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrFieldsRequired.WrapMessage("update user")
	}

	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	email := strings.ToLower(input.Email)
	srv.log(ctx).Info("Updating user", "userID", id)

	if fieldErrs := srv.validator.Validate(service.UserCandidate{
		Email:    email,
		Name:     input.Name,
		Password: input.Password,
	}); len(fieldErrs) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrs)
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user.Email = email
	user.Name = input.Name
	user.PasswordHash = hashed

	if err := srv.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user")
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrEmailTaken.WrapMessage("update user")
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	return usecase.NewUserView(user), nil
}

// Delete removes a user permanently. There is no soft delete.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete user")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if err := srv.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete user")
		}

		return errors.Wrap(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", "userID", id)

	return nil
}
