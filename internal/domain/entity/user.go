// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root of the identity domain. It carries the login
// identifier, the hashed credential, and the granted roles.
type User struct {
	ID           uuid.UUID // Assigned by the store on creation, immutable afterwards.
	Email        string    // Login identifier. Stored lowercased; unique across all users.
	Name         string    // The user's display name or real name.
	PasswordHash string    // The bcrypt-hashed password. Never the plaintext, never serialized outward.
	Roles        Roles     // Explicitly granted roles. RoleUser is always implied, see EffectiveRoles.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// EffectiveRoles returns the user's roles with the base role guaranteed and
// duplicates removed. Read paths must use this instead of the raw field so
// every user carries RoleUser even when it was never explicitly stored.
func (u *User) EffectiveRoles() Roles {
	effective := make(Roles, 0, len(u.Roles)+1)
	seen := make(map[Role]struct{}, len(u.Roles)+1)

	for _, role := range append(Roles{RoleUser}, u.Roles...) {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		effective = append(effective, role)
	}

	return effective
}
