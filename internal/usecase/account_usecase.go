// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateInput defines the data required to mutate an account.
// Exactly one of NewIdentifier or NewPassword must be set.
type UpdateInput struct {
	Token    string // Bearer token presented by the client.
	TargetID string // Optional legacy target identifier; must match the token's own identifier when set.

	NewIdentifier *string
	NewPassword   *string
}

// --- Output DTOs ---

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type AccountUsecase interface {
	// Register creates a new account. No token is issued on success;
	// registration and login are separate steps.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues a time-bounded bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyToken validates a bearer token and returns the bound identifier.
	VerifyToken(ctx context.Context, token string) (string, error)

	// Update mutates the account bound to the token: either a rename or a
	// password change, never both in one call.
	Update(ctx context.Context, input *UpdateInput) error
}
