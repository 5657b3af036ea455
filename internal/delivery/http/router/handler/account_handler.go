// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"compte/internal/delivery/http/response"
	"compte/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tokenHeader is the request header carrying the bearer token.
const tokenHeader = "token"

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateRequest carries the mutation body for PATCH /update. Pointers
// distinguish an absent field from an empty one.
type updateRequest struct {
	Identifier *string `json:"identifier"`
	Password   *string `json:"password"`
}

// Register handles the account creation request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Requête invalide")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Compte enregistré")
}

// Login handles the credential verification request. On success the signed
// token travels back in the message field.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Requête invalide")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Token)
}

// Verify handles the standalone token validation request.
func (h *AccountHandler) Verify(c echo.Context) error {
	token := c.Request().Header.Get(tokenHeader)
	if token == "" {
		return response.BadRequest(c, "Le token doit être fourni")
	}

	if _, err := h.uc.VerifyToken(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Token valide")
}

// Update handles the token-gated account mutation request.
func (h *AccountHandler) Update(c echo.Context) error {
	var body updateRequest
	if err := c.Bind(&body); err != nil {
		return response.BadRequest(c, "Requête invalide")
	}

	input := &usecase.UpdateInput{
		Token:         c.Request().Header.Get(tokenHeader),
		TargetID:      c.QueryParam("id"),
		NewIdentifier: body.Identifier,
		NewPassword:   body.Password,
	}

	if err := h.uc.Update(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Modification réussie")
}

// Logout acknowledges the request. Tokens are bearer credentials with no
// server-side state, so there is nothing to invalidate here.
func (h *AccountHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, "logout")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Le service est en ligne")
}
