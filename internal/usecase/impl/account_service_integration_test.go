package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"compte/config"
	"compte/internal/domain/entity"
	"compte/internal/domain/repository"
	"compte/internal/infra/auth"
	"compte/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccountRepo is an in-memory AccountRepository for exercising the
// full registration/login/update flow without a database.
type memoryAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Identifier]; exists {
		return repository.ErrDuplicateIdentifier
	}
	stored := *account
	r.accounts[account.Identifier] = &stored

	return nil
}

func (r *memoryAccountRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[identifier]
	if !exists {
		return nil, repository.ErrAccountNotFound
	}
	found := *account

	return &found, nil
}

func (r *memoryAccountRepo) UpdateHash(_ context.Context, identifier, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[identifier]
	if !exists {
		return repository.ErrAccountNotFound
	}
	account.PasswordHash = newHash

	return nil
}

func (r *memoryAccountRepo) UpdateIdentifier(_ context.Context, oldIdentifier, newIdentifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[oldIdentifier]
	if !exists {
		return repository.ErrAccountNotFound
	}
	if _, taken := r.accounts[newIdentifier]; taken {
		return repository.ErrDuplicateIdentifier
	}
	account.Identifier = newIdentifier
	r.accounts[newIdentifier] = account
	delete(r.accounts, oldIdentifier)

	return nil
}

func newIntegrationService(t *testing.T) (usecase.AccountUsecase, *memoryAccountRepo) {
	t.Helper()

	cfg := &config.Config{
		SecretKey: "integration_test_secret_key_long_enough",
		Auth:      &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: 10 * time.Minute},
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := newMemoryAccountRepo()
	service := NewAccountService(AccountServiceParams{
		AccountRepo:  repo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, repo
}

func TestAccountService_RegisterLoginVerifyRoundTrip(t *testing.T) {
	service, _ := newIntegrationService(t)
	ctx := context.Background()

	err := service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)

	output, err := service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, output.Token)

	// The token resolves back to the identifier it was bound to.
	identifier, err := service.VerifyToken(ctx, output.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identifier)
}

func TestAccountService_DuplicateRegisterKeepsStoredHash(t *testing.T) {
	service, repo := newIntegrationService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "secret1"}))
	before, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)

	err = service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "other"})
	assertAppErrorCode(t, err, "DUPLICATE_IDENTIFIER")

	after, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestAccountService_WrongPasswordAfterRegister(t *testing.T) {
	service, _ := newIntegrationService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "secret1"}))

	_, err := service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret1 "})
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAccountService_UpdateFlow(t *testing.T) {
	service, _ := newIntegrationService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "secret1"}))
	output, err := service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)

	// Change the password, then log in with the new one.
	err = service.Update(ctx, &usecase.UpdateInput{Token: output.Token, NewPassword: strPtr("secret2")})
	require.NoError(t, err)

	_, err = service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret1"})
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")

	output, err = service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret2"})
	require.NoError(t, err)

	// Rename the account; the old identifier no longer resolves.
	err = service.Update(ctx, &usecase.UpdateInput{Token: output.Token, NewIdentifier: strPtr("alice2")})
	require.NoError(t, err)

	_, err = service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret2"})
	assertAppErrorCode(t, err, "UNKNOWN_ACCOUNT")

	_, err = service.Login(ctx, &usecase.LoginInput{Identifier: "alice2", Password: "secret2"})
	require.NoError(t, err)
}

func TestAccountService_ConcurrentRegistrationSingleWinner(t *testing.T) {
	service, _ := newIntegrationService(t)
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- service.Register(ctx, &usecase.RegisterInput{Identifier: "alice", Password: "secret1"})
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, 1, succeeded)
}
