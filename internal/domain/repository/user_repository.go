// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// PageSize is the fixed number of users returned per listing page.
const PageSize = 10

// ErrUserNotFound is returned when no user exists at the given key.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when a write would violate email uniqueness.
// The store enforces the constraint atomically with the write itself; an
// application-level check-then-write is not sufficient under concurrency.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
// All mutating operations are atomic: either fully applied and visible to
// subsequent reads, or not applied at all.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users in stable insertion order. Pages are 1-indexed and
	// PageSize long; a page past the end yields an empty, non-error result.
	List(ctx context.Context, page int) ([]*entity.User, error)

	// Create persists a new user and assigns its ID and timestamps.
	// Returns ErrEmailTaken when the email is already in use.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces an existing user's fields.
	// Returns ErrUserNotFound or ErrEmailTaken as applicable.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	// Returns ErrUserNotFound when no such user exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
