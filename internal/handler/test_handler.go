package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"gatekeeper/internal/auth"
)

// TestHandler serves operator helpers that are only mounted when
// test.routes is enabled.
type TestHandler struct{}

// NewTestHandler creates a new test handler.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Health answers a plain liveness string.
func (h *TestHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "healthy\n")
}

// Hash digests the given secret. Useful for seeding the first admin user by
// hand before any token exists.
func (h *TestHandler) Hash(c echo.Context) error {
	digest, err := auth.HashSecret(c.Param("secret"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "hash failed\n")
	}
	return c.String(http.StatusOK, fmt.Sprintf("Your hash is %q\n", digest))
}
