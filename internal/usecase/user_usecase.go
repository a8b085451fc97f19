package usecase

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// UserInput defines the data supplied on create and full-replace update.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public projection of a User. It is the only way a user
// crosses the service boundary outward and never carries the password hash.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Roles []string  `json:"roles"`
}

// NewUserView projects a User entity to its public view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Roles: user.EffectiveRoles().ToStrings(),
	}
}

// UserUsecase defines the validated CRUD operations on the user resource.
type UserUsecase interface {
	// List returns the public views for one page of users.
	// An empty page is reported as "no users found".
	List(ctx context.Context, page int) ([]*UserView, error)

	// Create validates the input, hashes the password, and persists a new
	// user carrying the base role.
	Create(ctx context.Context, input *UserInput) (*UserView, error)

	// Show returns the public view of a single user.
	Show(ctx context.Context, id uuid.UUID) (*UserView, error)

	// Update performs a full replace of name, email, and password.
	Update(ctx context.Context, id uuid.UUID, input *UserInput) (*UserView, error)

	// Delete removes a user permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
