package service

// FieldError names the offending field of a validation failure together with
// a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserCandidate is the shape the validator judges: the user fields as supplied
// by the caller, with the password still in plaintext. Validation always runs
// before hashing.
type UserCandidate struct {
	Email    string
	Name     string
	Password string
}

// UserValidator enforces the field-level invariants protecting the user record.
// Email uniqueness is deliberately not part of this contract; the store
// enforces it atomically at write time.
type UserValidator interface {
	// Validate evaluates every rule and reports all violations in one pass.
	// An empty slice means the candidate is acceptable.
	Validate(candidate UserCandidate) []FieldError
}
