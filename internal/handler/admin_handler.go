package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/service"
)

// AdminHandler handles privileged user/scope administration and maintenance.
// Every endpoint requires a bearer token carrying the authadmin scope; the
// service evaluates the guard before any mutating side effect.
type AdminHandler struct {
	authService service.AuthService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService service.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// CreateUserRequest is the user provisioning request body.
type CreateUserRequest struct {
	Name   string   `json:"name" validate:"required"`
	Secret string   `json:"secret" validate:"required"`
	Life   uint64   `json:"life" validate:"gt=0"`
	Scopes []string `json:"scopes"`
}

// CreateUser provisions a new enabled user.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	credential := auth.BearerFromHeader(bearer(c))
	if err := h.authService.CreateUser(c.Request().Context(), credential, req.Name, req.Secret, req.Life, req.Scopes); err != nil {
		return respondError(c, err)
	}
	return respond(c, "created")
}

// CreateScope registers a new capability. The body is a bare JSON string.
func (h *AdminHandler) CreateScope(c echo.Context) error {
	var name string
	if err := json.NewDecoder(c.Request().Body).Decode(&name); err != nil || name == "" {
		return respondError(c, errors.ErrFailed)
	}

	credential := auth.BearerFromHeader(bearer(c))
	if err := h.authService.CreateScope(c.Request().Context(), credential, name); err != nil {
		return respondError(c, err)
	}
	return respond(c, "created")
}

// Clean purges expired tokens and sweeps the cache.
func (h *AdminHandler) Clean(c echo.Context) error {
	credential := auth.BearerFromHeader(bearer(c))
	if err := h.authService.Clean(c.Request().Context(), credential); err != nil {
		return respondError(c, err)
	}
	return respond(c, "cleaned")
}
