// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity in the system: one record per registered identifier.
// The identifier doubles as the primary key and is immutable except through an
// explicit rename operation.
type Account struct {
	Identifier   string    // The unique login identifier, chosen by the user at registration.
	PasswordHash string    // The bcrypt-hashed password. The clear password is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
