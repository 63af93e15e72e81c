package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/cache"
	"gatekeeper/internal/creds"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/metrics"
	"gatekeeper/internal/model"
	"gatekeeper/internal/token"
)

// AuthResult is the payload returned on successful login.
type AuthResult struct {
	Token  string   `json:"token"`
	Scopes []string `json:"scopes"`
	Life   uint64   `json:"life"`
}

// CheckResult is the payload returned for a validated bearer credential.
type CheckResult struct {
	Username string   `json:"username"`
	Life     uint64   `json:"life"`
	Scopes   []string `json:"scopes"`
}

// AuthService implements the login and admin use cases.
type AuthService interface {
	Login(ctx context.Context, name, secret string, scopes []string) (*AuthResult, error)
	CheckAuth(ctx context.Context, credential string) (*CheckResult, error)
	CreateUser(ctx context.Context, credential, name, secret string, life uint64, scopes []string) error
	CreateScope(ctx context.Context, credential, name string) error
	Clean(ctx context.Context, credential string) error
}

type authService struct {
	users         creds.UserStore
	scopes        creds.ScopeStore
	tokens        token.Manager
	guard         auth.Guard
	cache         *cache.Client
	tokenLifetime time.Duration
	log           *logrus.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users creds.UserStore,
	scopes creds.ScopeStore,
	tokens token.Manager,
	guard auth.Guard,
	cache *cache.Client,
	tokenLifetime time.Duration,
	log *logrus.Logger,
) AuthService {
	return &authService{
		users:         users,
		scopes:        scopes,
		tokens:        tokens,
		guard:         guard,
		cache:         cache,
		tokenLifetime: tokenLifetime,
		log:           log,
	}
}

// Login exchanges a name/secret pair for a token scoped to the requested
// capabilities. The granted set is always a subset of both the user's owned
// scopes and the currently active scopes.
func (s *authService) Login(ctx context.Context, name, secret string, scopes []string) (*AuthResult, error) {
	user, err := s.users.Get(ctx, name)
	if err != nil {
		if err != errors.ErrNotFound {
			s.log.WithError(err).WithField("user", name).Error("user fetch failed")
		}
		metrics.Logins.WithLabelValues("failed").Inc()
		return nil, errors.ErrFailed
	}

	active, err := s.scopes.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("scope list failed")
		metrics.Logins.WithLabelValues("failed").Inc()
		return nil, errors.ErrFailed
	}

	if !user.IsActive() || !auth.VerifySecret(user.Hash, secret) {
		metrics.Logins.WithLabelValues("bad_auth").Inc()
		return nil, errors.ErrBadAuth
	}

	if !scopesValid(scopes, user.Scopes, active) {
		metrics.Logins.WithLabelValues("bad_scopes").Inc()
		return nil, errors.ErrBadScopes
	}

	tok, err := s.tokens.Issue(ctx, name, scopes, s.tokenLifetime)
	if err != nil {
		s.log.WithError(err).WithField("user", name).Error("token issue failed")
		metrics.Logins.WithLabelValues("failed").Inc()
		return nil, errors.ErrFailed
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	return &AuthResult{
		Token:  tok.Token,
		Scopes: tok.Scopes,
		Life:   tok.SecondsLeft(),
	}, nil
}

// CheckAuth resolves the caller's bearer credential and describes it.
func (s *authService) CheckAuth(ctx context.Context, credential string) (*CheckResult, error) {
	tok, err := s.guard.Lookup(ctx, credential)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Username: tok.Username,
		Life:     tok.SecondsLeft(),
		Scopes:   tok.Scopes,
	}, nil
}

// CreateUser provisions a new enabled user. The requested scopes are checked
// against the active registry only, since no owner exists yet. Existence is
// not pre-checked; a duplicate name fails at the store's primary key.
func (s *authService) CreateUser(ctx context.Context, credential, name, secret string, life uint64, scopes []string) error {
	if err := s.guard.RequireScope(ctx, credential, auth.AdminScope); err != nil {
		return err
	}

	active, err := s.scopes.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("scope list failed")
		return errors.ErrFailed
	}
	if !scopesValid(scopes, active, active) {
		return errors.ErrBadScopes
	}

	hash, err := auth.HashSecret(secret)
	if err != nil {
		s.log.WithError(err).Error("hash secret failed")
		return errors.ErrFailed
	}

	user := &model.User{
		Name:       name,
		Hash:       hash,
		Expiration: time.Now().Add(time.Duration(life) * time.Second),
		Enabled:    true,
		Scopes:     scopes,
	}
	if err := s.users.Put(ctx, user); err != nil {
		s.log.WithError(err).WithField("user", name).Error("user insert failed")
		return errors.ErrFailed
	}
	return nil
}

// CreateScope registers a new capability name. Not idempotent: a duplicate
// insert fails at the store.
func (s *authService) CreateScope(ctx context.Context, credential, name string) error {
	if err := s.guard.RequireScope(ctx, credential, auth.AdminScope); err != nil {
		return err
	}
	if err := s.scopes.Add(ctx, name); err != nil {
		s.log.WithError(err).WithField("scope", name).Error("scope insert failed")
		return errors.ErrFailed
	}
	return nil
}

// Clean purges expired tokens and sweeps the cache. Advisory maintenance:
// partial failures are logged and swallowed.
func (s *authService) Clean(ctx context.Context, credential string) error {
	if err := s.guard.RequireScope(ctx, credential, auth.AdminScope); err != nil {
		return err
	}

	count, err := s.tokens.PurgeExpired(ctx)
	if err != nil {
		s.log.WithError(err).Warn("token purge failed")
	} else {
		metrics.TokensPurged.Add(float64(count))
		s.log.WithField("count", count).Info("purged expired tokens")
	}

	_ = s.cache.Flush(ctx)
	return nil
}
