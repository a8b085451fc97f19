package validation

import (
	"strings"
	"testing"

	"identity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs []service.FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}

	return fields
}

func TestUserValidator_Valid(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "Password123!",
	})

	assert.Empty(t, errs)
}

func TestUserValidator_InvalidEmail(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "not-an-email",
		Name:     "Test User",
		Password: "Password123!",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Please provide a valid email address.", errs[0].Message)
}

func TestUserValidator_ShortName(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "test@example.com",
		Name:     "ab",
		Password: "Password123!",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Contains(t, errs[0].Message, "at least 3 characters")
}

func TestUserValidator_LongName(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "test@example.com",
		Name:     strings.Repeat("a", 256),
		Password: "Password123!",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Contains(t, errs[0].Message, "cannot exceed 255 characters")
}

func TestUserValidator_ShortPassword(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "short7c",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Equal(t, "The password must be at least 8 characters long.", errs[0].Message)
}

func TestUserValidator_MissingFields(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{})

	assert.ElementsMatch(t, []string{"email", "name", "password"}, fieldsOf(errs))
}

func TestUserValidator_CollectsAllViolations(t *testing.T) {
	v := NewUserValidator()

	errs := v.Validate(service.UserCandidate{
		Email:    "not-an-email",
		Name:     "ab",
		Password: "short7c",
	})

	// One pass reports every violation, none are dropped on the first hit.
	assert.ElementsMatch(t, []string{"email", "name", "password"}, fieldsOf(errs))
}
