package handler

import (
	"github.com/labstack/echo/v4"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/service"
)

// AuthHandler handles the login and check-auth endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Name   string   `json:"name" validate:"required"`
	Secret string   `json:"secret" validate:"required"`
	Scopes []string `json:"scopes"`
}

// Login exchanges name/secret for a scoped bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	res, err := h.authService.Login(c.Request().Context(), req.Name, req.Secret, req.Scopes)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, res)
}

// CheckAuth describes the caller's bearer credential.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	credential := auth.BearerFromHeader(bearer(c))
	res, err := h.authService.CheckAuth(c.Request().Context(), credential)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, res)
}
