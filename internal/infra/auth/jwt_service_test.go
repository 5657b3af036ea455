package auth

import (
	"testing"
	"time"

	"compte/config"
	"compte/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{SecretKey: testSecret})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t)

	now := time.Now()
	token, err := svc.Issue("alice", now, 10*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identifier, err := svc.Validate(token, now)
	assert.NoError(t, err)
	assert.Equal(t, "alice", identifier)

	// Still valid just before expiry
	identifier, err = svc.Validate(token, now.Add(10*time.Minute-time.Second))
	assert.NoError(t, err)
	assert.Equal(t, "alice", identifier)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	now := time.Now()
	token, err := svc.Issue("alice", now, 10*time.Minute)
	require.NoError(t, err)

	// Once the TTL has elapsed the token is rejected with the expiry reason.
	_, err = svc.Validate(token, now.Add(11*time.Minute))
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_IssuedInFuture(t *testing.T) {
	svc := newTestTokenService(t)

	now := time.Now()
	token, err := svc.Issue("alice", now.Add(5*time.Minute), 10*time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token, now)
	assert.ErrorIs(t, err, service.ErrTokenIssuedInFuture)
}

func TestJWTService_InvertedLifetime(t *testing.T) {
	svc := newTestTokenService(t)

	now := time.Now()
	// A negative ttl puts exp before iat; such a token must fail at any instant.
	token, err := svc.Issue("alice", now, -10*time.Minute)
	require.NoError(t, err)

	for _, at := range []time.Time{now.Add(-time.Hour), now, now.Add(time.Hour)} {
		_, err = svc.Validate(token, at)
		assert.Error(t, err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewJWTService(&config.Config{SecretKey: "a_completely_different_secret_key"})
	require.NoError(t, err)

	now := time.Now()
	token, err := other.Issue("alice", now, 10*time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token, now)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.Validate("clearly-not-a-jwt-token", time.Now())
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_MissingClaims(t *testing.T) {
	svc := newTestTokenService(t)
	now := time.Now()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "no exp", claims: jwt.MapClaims{"sub": "alice", "iat": now.Unix()}},
		{name: "no iat", claims: jwt.MapClaims{"sub": "alice", "exp": now.Add(time.Minute).Unix()}},
		{name: "no sub", claims: jwt.MapClaims{"iat": now.Unix(), "exp": now.Add(time.Minute).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = svc.Validate(signed, now)
			assert.ErrorIs(t, err, service.ErrTokenMissingField)
		})
	}
}

func TestJWTService_UnsignedAlgorithmRejected(t *testing.T) {
	svc := newTestTokenService(t)
	now := time.Now()

	claims := jwt.MapClaims{"sub": "alice", "iat": now.Unix(), "exp": now.Add(time.Minute).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned, now)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestTokenService(t)
	assert.Equal(t, 10*time.Minute, svc.TTL())

	withTTL, err := NewJWTService(&config.Config{
		SecretKey: testSecret,
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, withTTL.TTL())
}
