package service

import (
	"errors"
	"time"
)

// Token validation failures. Each carries the human-readable reason surfaced
// to the client; none of them leak the signing secret or internal state.
// The order below mirrors the order of the validation checks.
var (
	// ErrTokenMalformed covers signature mismatch and any structurally broken token.
	ErrTokenMalformed = errors.New("signature invalide ou jeton mal formé")
	// ErrTokenMissingField is returned when iat, exp or the bound identifier is absent.
	ErrTokenMissingField = errors.New("élément manquant dans le jeton")
	// ErrTokenIssuedInFuture is returned when the issue instant is after the current time.
	ErrTokenIssuedInFuture = errors.New("la date de création doit être antérieure à l'heure actuelle")
	// ErrTokenExpired is returned when the expiry instant is before the current time.
	ErrTokenExpired = errors.New("la date d'expiration doit être postérieure à l'heure actuelle")
	// ErrTokenLifetimeInverted is returned when the token expires before it was issued.
	ErrTokenLifetimeInverted = errors.New("la date d'expiration doit être postérieure à la date de création")
)

// TokenService defines the interface for issuing and validating signed,
// time-bounded bearer tokens. This abstracts the token format (JWT) from the use cases.
type TokenService interface {
	// Issue signs a token bound to identifier, valid from now until now+ttl.
	Issue(identifier string, now time.Time, ttl time.Duration) (string, error)

	// Validate checks a token against now and returns the bound identifier.
	// On failure it returns one of the Err* reasons above; the first failing
	// check determines which one.
	Validate(token string, now time.Time) (string, error)

	// TTL returns the configured lifetime for newly issued tokens.
	TTL() time.Duration
}
