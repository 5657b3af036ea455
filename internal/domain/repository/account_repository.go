// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"compte/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account exists for the given identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateIdentifier is returned when the identifier is already taken.
	ErrDuplicateIdentifier = errors.New("identifier already registered")
)

// AccountRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account entity. The uniqueness check is atomic
	// with the write: concurrent registrations of the same identifier cannot both succeed.
	Create(ctx context.Context, account *entity.Account) error

	// FindByIdentifier retrieves a single account by its identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// UpdateHash replaces the stored password hash for an existing account.
	UpdateHash(ctx context.Context, identifier, newHash string) error

	// UpdateIdentifier renames an existing account. Fails with
	// ErrDuplicateIdentifier when the new identifier is already taken.
	UpdateIdentifier(ctx context.Context, oldIdentifier, newIdentifier string) error
}
