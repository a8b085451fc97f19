package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_EffectiveRoles(t *testing.T) {
	cases := []struct {
		name     string
		stored   Roles
		expected []string
	}{
		{
			name:     "no stored roles",
			stored:   nil,
			expected: []string{"USER"},
		},
		{
			name:     "base role stored explicitly",
			stored:   Roles{RoleUser},
			expected: []string{"USER"},
		},
		{
			name:     "admin implies base role",
			stored:   Roles{RoleAdmin},
			expected: []string{"USER", "ADMIN"},
		},
		{
			name:     "duplicates collapse",
			stored:   Roles{RoleAdmin, RoleUser, RoleAdmin},
			expected: []string{"USER", "ADMIN"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{Roles: tc.stored}
			assert.Equal(t, tc.expected, user.EffectiveRoles().ToStrings())
		})
	}
}

func TestRolesFromStrings_DropsEmpty(t *testing.T) {
	roles := RolesFromStrings([]string{"USER", "", "ADMIN"})
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
}
