package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/cache"
	"gatekeeper/internal/config"
	"gatekeeper/internal/creds"
	"gatekeeper/internal/db"
	"gatekeeper/internal/handler"
	"gatekeeper/internal/model"
	"gatekeeper/internal/repository"
	"gatekeeper/internal/router"
	"gatekeeper/internal/service"
	"gatekeeper/internal/token"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Scope{},
		&model.Token{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	var cacheClient *cache.Client
	if cfg.CacheEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTimeout)
		log.Info("caching enabled")
	} else {
		log.Info("caching disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	scopeRepo := repository.NewScopeRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)

	// Cache-aside credential stores
	userStore := creds.NewUserStore(userRepo, cacheClient, cfg.UserTTL, log)
	scopeStore := creds.NewScopeStore(scopeRepo, cacheClient, cfg.ScopesTTL, log)
	tokenStore := creds.NewTokenStore(tokenRepo, cacheClient, cfg.TokenTTL, log)

	// Token lifecycle and authorization guard
	tokens := token.NewManager(tokenStore)
	guard := auth.NewGuard(tokens)

	authService := service.NewAuthService(userStore, scopeStore, tokens, guard, cacheClient, cfg.TokenLifetime, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService)
	testHandler := handler.NewTestHandler()

	router.Register(e, cfg, authHandler, adminHandler, testHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
