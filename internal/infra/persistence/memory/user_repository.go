// Package memory provides an in-memory implementation of the user store,
// used by tests and local development. The mutex makes each mutation atomic:
// the uniqueness check and the write happen under one critical section.
package memory

import (
	"context"
	"sync"
	"time"

	"identity/internal/domain/entity"
	"identity/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository with a mutex-guarded map.
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
	order []uuid.UUID // Insertion order for stable listing.
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.User),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		if repo.users[id].Email == email {
			return cloneUser(repo.users[id]), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// List returns one page of users in insertion order.
func (repo *userRepository) List(_ context.Context, page int) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if page < 1 {
		page = 1
	}

	start := (page - 1) * repository.PageSize
	if start >= len(repo.order) {
		return []*entity.User{}, nil
	}

	end := start + repository.PageSize
	if end > len(repo.order) {
		end = len(repo.order)
	}

	users := make([]*entity.User, 0, end-start)
	for _, id := range repo.order[start:end] {
		users = append(users, cloneUser(repo.users[id]))
	}

	return users, nil
}

// Create persists a new user, assigning its ID and timestamps.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.emailTakenLocked(user.Email, uuid.Nil) {
		return repository.ErrEmailTaken
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	repo.users[user.ID] = cloneUser(user)
	repo.order = append(repo.order, user.ID)

	return nil
}

// Update replaces an existing user's fields.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if repo.emailTakenLocked(user.Email, user.ID) {
		return repository.ErrEmailTaken
	}

	updated := cloneUser(user)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	repo.users[user.ID] = updated
	user.UpdatedAt = updated.UpdatedAt

	return nil
}

// Delete removes the user with the given ID.
func (repo *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[id]; !ok {
		return repository.ErrUserNotFound
	}

	delete(repo.users, id)
	for i, ordered := range repo.order {
		if ordered == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}

// emailTakenLocked reports whether another user already holds the email.
// Callers must hold the write lock.
func (repo *userRepository) emailTakenLocked(email string, self uuid.UUID) bool {
	for id, user := range repo.users {
		if id != self && user.Email == email {
			return true
		}
	}

	return false
}

// cloneUser copies a user so callers never alias the stored value.
func cloneUser(user *entity.User) *entity.User {
	cloned := *user
	cloned.Roles = append(entity.Roles(nil), user.Roles...)

	return &cloned
}
