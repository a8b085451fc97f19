// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput returns the issued identity token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the credential verification and token issuance pipeline.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login runs lookup, verification, and issuance. Each failure is terminal
	// and classified: missing fields, unknown email, and wrong password are
	// reported distinctly and never retried.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
