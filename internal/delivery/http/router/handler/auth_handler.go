package handler

import (
	"log/slog"
	"net/http"

	"trailforge/internal/delivery/http/response"
	"trailforge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Tokens service.TokenSink
	Logger *slog.Logger
}

// AuthHandler accepts session tokens from the external re-auth flow
type AuthHandler struct {
	tokens service.TokenSink
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		tokens: params.Tokens,
		logger: params.Logger,
	}
}

// SetTokenRequest represents the request body for installing a session token
type SetTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// SetToken installs a fresh bearer token for remote persistence
func (h *AuthHandler) SetToken(c echo.Context) error {
	var req SetTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.tokens.SetToken(req.Token); err != nil {
		return response.BadRequest(c, "INVALID_TOKEN", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token installed"}, "Token installed successfully")
}

// ClearToken drops the current session, returning to anonymous
func (h *AuthHandler) ClearToken(c echo.Context) error {
	h.tokens.ClearToken()

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token cleared"}, "Token cleared successfully")
}
