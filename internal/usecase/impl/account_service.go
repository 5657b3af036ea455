// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "compte/internal/delivery/context"
	"compte/internal/domain/entity"
	domainerrors "compte/internal/domain/errors"
	"compte/internal/domain/repository"
	"compte/internal/domain/service"
	"compte/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account: hash the password, then persist the entity.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("identifier", input.Identifier))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrHashingFailure.WrapMessage("failed to hash password during registration")
	}

	account := &entity.Account{
		Identifier:   input.Identifier,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentifier) {
			srv.log(ctx).Warn("Registration rejected, identifier taken", slog.String("identifier", input.Identifier))

			return domainerrors.ErrDuplicateIdentifier.WrapMessage("identifier already registered")
		}

		srv.log(ctx).Error("Failed to insert account", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return errors.Wrap(err, "failed to insert account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("identifier", input.Identifier))

	return nil
}

// Login verifies the credentials and issues a token bound to the identifier.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown account", slog.String("identifier", input.Identifier))

			return nil, domainerrors.ErrUnknownAccount.WrapMessage("no account for identifier")
		}

		srv.log(ctx).Error("Failed to look up account", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account during login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("identifier", input.Identifier))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch during login")
	}

	token, err := srv.tokenService.Issue(input.Identifier, time.Now(), srv.tokenService.TTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("identifier", input.Identifier))

	return &usecase.LoginOutput{Token: token}, nil
}

// VerifyToken validates a bearer token and returns the bound identifier.
func (srv *accountService) VerifyToken(ctx context.Context, token string) (string, error) {
	identifier, err := srv.tokenService.Validate(token, time.Now())
	if err != nil {
		srv.log(ctx).Warn("Token rejected", slog.String("reason", err.Error()))

		return "", domainerrors.NewInvalidTokenError(err.Error())
	}

	return identifier, nil
}

// Update mutates the account bound to the token: a rename or a password
// change, never both in one call. The acted-upon identifier is derived from
// the validated token, never from an untrusted request parameter.
func (srv *accountService) Update(ctx context.Context, input *usecase.UpdateInput) error {
	if input.Token == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("missing token")
	}

	identifier, err := srv.tokenService.Validate(input.Token, time.Now())
	if err != nil {
		srv.log(ctx).Warn("Update rejected, invalid token", slog.String("reason", err.Error()))

		return domainerrors.NewInvalidTokenError(err.Error())
	}

	// The legacy target parameter is accepted only when it names the
	// token's own account.
	if input.TargetID != "" && input.TargetID != identifier {
		srv.log(ctx).Warn("Update rejected, target does not match token",
			slog.String("identifier", identifier), slog.String("target", input.TargetID))

		return domainerrors.ErrUnauthorized.WrapMessage("target identifier does not match token")
	}

	hasNewIdentifier := input.NewIdentifier != nil && *input.NewIdentifier != ""
	hasNewPassword := input.NewPassword != nil && *input.NewPassword != ""
	if hasNewIdentifier == hasNewPassword {
		return domainerrors.ErrMalformedRequest.WrapMessage("exactly one of identifier or password must be provided")
	}

	if hasNewPassword {
		return srv.updatePassword(ctx, identifier, *input.NewPassword)
	}

	return srv.updateIdentifier(ctx, identifier, *input.NewIdentifier)
}

func (srv *accountService) updatePassword(ctx context.Context, identifier, newPassword string) error {
	newHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

		return domainerrors.ErrHashingFailure.WrapMessage("failed to hash password during update")
	}

	if err := srv.accountRepo.UpdateHash(ctx, identifier, newHash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account vanished before password update")
		}

		srv.log(ctx).Error("Failed to update password hash", slog.String("identifier", identifier), slog.Any("error", err))

		return errors.Wrap(err, "failed to update password hash")
	}

	srv.log(ctx).Info("Password updated", slog.String("identifier", identifier))

	return nil
}

func (srv *accountService) updateIdentifier(ctx context.Context, identifier, newIdentifier string) error {
	if err := srv.accountRepo.UpdateIdentifier(ctx, identifier, newIdentifier); err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			return domainerrors.ErrAccountNotFound.WrapMessage("account vanished before rename")
		case errors.Is(err, repository.ErrDuplicateIdentifier):
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("new identifier already registered")
		}

		srv.log(ctx).Error("Failed to rename account", slog.String("identifier", identifier), slog.Any("error", err))

		return errors.Wrap(err, "failed to rename account")
	}

	srv.log(ctx).Info("Identifier updated",
		slog.String("identifier", identifier), slog.String("newIdentifier", newIdentifier))

	return nil
}
