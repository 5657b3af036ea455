package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"compte/internal/domain/entity"
	"compte/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the account service collaborators.

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepo) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	args := m.Called(ctx, identifier)

	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) UpdateHash(ctx context.Context, identifier, newHash string) error {
	args := m.Called(ctx, identifier, newHash)

	return args.Error(0)
}

func (m *mockAccountRepo) UpdateIdentifier(ctx context.Context, oldIdentifier, newIdentifier string) error {
	args := m.Called(ctx, oldIdentifier, newIdentifier)

	return args.Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(identifier string, now time.Time, ttl time.Duration) (string, error) {
	args := m.Called(identifier, now, ttl)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(token string, now time.Time) (string, error) {
	args := m.Called(token, now)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockAccountRepo
	hasher       *mockHasher
	tokenService *mockTokenService
}

func createTestAccountService() accountServiceFixtures {
	accountRepo := &mockAccountRepo{}
	hasher := &mockHasher{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
