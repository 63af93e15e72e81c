// Package auth resolves bearer credentials to tokens and gates privileged
// operations on scope and identity checks.
package auth

import (
	"context"
	"slices"
	"strings"

	"gatekeeper/internal/errors"
	"gatekeeper/internal/model"
	"gatekeeper/internal/token"
)

// AdminScope gates user/scope administration and maintenance.
const AdminScope = "authadmin"

// bearerPrefix is matched case-sensitively.
const bearerPrefix = "bearer "

// BearerFromHeader extracts the opaque credential from an Authorization
// header value. A missing or malformed header yields the empty credential,
// which every check later collapses to a plain auth failure.
func BearerFromHeader(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

// Guard is the single gate for privileged operations. It must be consulted
// before any mutating side effect.
type Guard interface {
	// Lookup resolves a credential to its token, failing with ErrExpired for
	// a token past its expiration and ErrBadAuth otherwise.
	Lookup(ctx context.Context, credential string) (*model.Token, error)
	// RequireScope fails unless the credential resolves to a live token
	// carrying the scope.
	RequireScope(ctx context.Context, credential, scope string) error
	// RequireUserOrScope fails unless the resolved token belongs to the user
	// or carries the scope.
	RequireUserOrScope(ctx context.Context, credential, username, scope string) error
}

type guard struct {
	tokens token.Manager
}

// NewGuard builds a guard over the token lifecycle manager.
func NewGuard(tokens token.Manager) Guard {
	return &guard{tokens: tokens}
}

func (g *guard) Lookup(ctx context.Context, credential string) (*model.Token, error) {
	tok, err := g.tokens.Lookup(ctx, credential)
	if err != nil {
		return nil, err
	}
	if tok.IsExpired() {
		return nil, errors.ErrExpired
	}
	return tok, nil
}

func (g *guard) RequireScope(ctx context.Context, credential, scope string) error {
	tok, err := g.Lookup(ctx, credential)
	if err != nil {
		return err
	}
	if !slices.Contains(tok.Scopes, scope) {
		return errors.ErrBadAuth
	}
	return nil
}

func (g *guard) RequireUserOrScope(ctx context.Context, credential, username, scope string) error {
	tok, err := g.Lookup(ctx, credential)
	if err != nil {
		return err
	}
	if tok.Username != username && !slices.Contains(tok.Scopes, scope) {
		return errors.ErrBadAuth
	}
	return nil
}
