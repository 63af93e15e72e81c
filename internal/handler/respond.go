package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatekeeper/internal/errors"
)

func respond(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, errors.OK(result))
}

func respondError(c echo.Context, err error) error {
	code, body := errors.MapError(err)
	return c.JSON(code, body)
}

func bearer(c echo.Context) string {
	return c.Request().Header.Get(echo.HeaderAuthorization)
}
