// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"compte/config"
	"compte/internal/domain/service"
)

// defaultTokenTTL applies when the config leaves the token lifetime unset.
const defaultTokenTTL = 10 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed and carry the bound identifier as the subject claim.
// All instants are Unix seconds end-to-end.
type jwtService struct {
	secret string        // Secret key for signing tokens. Never logged.
	ttl    time.Duration // Time-to-live for issued tokens.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey,
		ttl:    ttl,
		// Claim validation is done by hand in Validate so the first failing
		// check determines the reported reason.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// Issue creates a signed token bound to identifier, valid from now until now+ttl.
func (s *jwtService) Issue(identifier string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": identifier,          // Subject (who the token is for)
		"iat": now.Unix(),          // Issued At
		"exp": now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the token and returns the bound identifier.
// Checks run in a fixed order: signature, claim presence, issued-at not in
// the future, not expired, lifetime not inverted. The first failure wins.
func (s *jwtService) Validate(tokenString string, now time.Time) (string, error) {
	token, err := s.parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", service.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", service.ErrTokenMalformed
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return "", service.ErrTokenMissingField
	}
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return "", service.ErrTokenMissingField
	}
	identifier, err := claims.GetSubject()
	if err != nil || identifier == "" {
		return "", service.ErrTokenMissingField
	}

	if issuedAt.Unix() > now.Unix() {
		return "", service.ErrTokenIssuedInFuture
	}
	if expiresAt.Unix() < now.Unix() {
		return "", service.ErrTokenExpired
	}
	if issuedAt.Unix() > expiresAt.Unix() {
		return "", service.ErrTokenLifetimeInverted
	}

	return identifier, nil
}

// TTL returns the configured lifetime for newly issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
