// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	issuer service.TokenIssuer
	logger *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	issuer service.TokenIssuer,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the login pipeline: parse, look up, verify, issue.
// Every failure is terminal; nothing is retried. The unknown-email and
// wrong-password outcomes stay distinct.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired.WrapMessage("login failed")
	}

	email := strings.ToLower(input.Email)
	srv.log(ctx).Debug("Starting login", "email", email)

	user, err := srv.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", "email", email)

		return nil, domainerrors.ErrIncorrectPassword.WrapMessage("login failed")
	}

	token, err := srv.issuer.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.log(ctx).Debug("User logged in", "userID", user.ID)

	return &usecase.LoginOutput{Token: token}, nil
}
