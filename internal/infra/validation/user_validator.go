// Package validation implements the domain's field-level validation rules on
// top of go-playground/validator.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"identity/internal/domain/service"
)

// candidate mirrors service.UserCandidate with the validation rules attached.
// Both create and full-replace update supply a plaintext password, so the
// password is always validated here, before it is hashed.
type candidate struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=3,max=255"`
	Password string `validate:"required,min=8"`
}

// userValidator implements service.UserValidator.
type userValidator struct {
	validate *validator.Validate
}

// NewUserValidator is the constructor for userValidator.
func NewUserValidator() service.UserValidator {
	return &userValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate evaluates every rule and reports all violations in one pass.
// go-playground/validator does not short-circuit across fields, so a candidate
// with three bad fields yields three field errors.
func (v *userValidator) Validate(c service.UserCandidate) []service.FieldError {
	fieldErrs := make([]service.FieldError, 0)

	err := v.validate.Struct(candidate(c))
	if err == nil {
		return fieldErrs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator only returns a different type for invalid input values,
		// which cannot happen with a plain struct.
		fieldErrs = append(fieldErrs, service.FieldError{Field: "user", Message: err.Error()})

		return fieldErrs
	}

	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, service.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}

	return fieldErrs
}

// messageFor renders a human-readable reason for a single violation.
func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return "The " + field + " is required."
	case "email":
		return "Please provide a valid email address."
	case "min":
		if field == "password" {
			return "The password must be at least " + fe.Param() + " characters long."
		}

		return "The " + field + " must be at least " + fe.Param() + " characters long."
	case "max":
		return "The " + field + " cannot exceed " + fe.Param() + " characters."
	default:
		return "The " + field + " is invalid."
	}
}
