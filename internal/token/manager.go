// Package token manages the lifecycle of issued session tokens: absent,
// issued, expired, and finally purged by the maintenance sweep.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gatekeeper/internal/creds"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/model"
)

// idBytes is the amount of CSPRNG entropy per token identifier. 16 bytes
// (128 bits) makes guessing infeasible; collisions are not checked for, the
// store's uniqueness constraint is the backstop.
const idBytes = 16

// Manager issues, looks up, and purges tokens.
type Manager interface {
	Issue(ctx context.Context, username string, scopes []string, lifetime time.Duration) (*model.Token, error)
	Lookup(ctx context.Context, id string) (*model.Token, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type manager struct {
	store creds.TokenStore
}

// NewManager creates a token lifecycle manager on top of a token store.
func NewManager(store creds.TokenStore) Manager {
	return &manager{store: store}
}

// newID returns a fresh random token identifier. Reading crypto/rand per
// call keeps issuance safe under concurrency without any shared generator
// state to lock.
func newID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (m *manager) Issue(ctx context.Context, username string, scopes []string, lifetime time.Duration) (*model.Token, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	token := &model.Token{
		Token:      id,
		Username:   username,
		Expiration: time.Now().Add(lifetime),
		Scopes:     scopes,
	}
	if err := m.store.Put(ctx, token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return token, nil
}

// Lookup resolves a token identifier. An empty credential and an unknown one
// collapse to the same auth failure so callers cannot probe for valid ids.
func (m *manager) Lookup(ctx context.Context, id string) (*model.Token, error) {
	if id == "" {
		return nil, errors.ErrBadAuth
	}
	token, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, errors.ErrBadAuth
	}
	return token, nil
}

func (m *manager) PurgeExpired(ctx context.Context) (int64, error) {
	return m.store.PurgeExpired(ctx)
}
