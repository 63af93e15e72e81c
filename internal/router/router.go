package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gatekeeper/internal/config"
	"gatekeeper/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	testHandler *handler.TestHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth", authHandler.Login)
	e.GET("/auth/check", authHandler.CheckAuth)

	admin := e.Group("/admin")
	admin.POST("/user", adminHandler.CreateUser)
	admin.POST("/scope", adminHandler.CreateScope)
	admin.POST("/clean", adminHandler.Clean)

	if cfg.TestRoutes {
		test := e.Group("/test")
		test.GET("/", testHandler.Health)
		test.GET("/hash/:secret", testHandler.Hash)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
