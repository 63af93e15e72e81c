package creds

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm"

	"gatekeeper/internal/cache"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/metrics"
	"gatekeeper/internal/model"
	"gatekeeper/internal/repository"
)

// TokenStore is cache-aside access to issued tokens.
type TokenStore interface {
	Get(ctx context.Context, id string) (*model.Token, error)
	Put(ctx context.Context, token *model.Token) error
	// PurgeExpired removes expired token rows from the store. Cache entries
	// for purged rows are left to expire by TTL; that staleness window is
	// bounded by the configured token TTL.
	PurgeExpired(ctx context.Context) (int64, error)
}

type tokenStore struct {
	repo  repository.TokenRepository
	cache *cache.Client
	ttl   time.Duration
	log   *logrus.Logger
}

// NewTokenStore composes the token repository with the cache layer.
func NewTokenStore(repo repository.TokenRepository, cache *cache.Client, ttl time.Duration, log *logrus.Logger) TokenStore {
	return &tokenStore{repo: repo, cache: cache, ttl: ttl, log: log}
}

func tokenKey(id string) string {
	return "token_" + id
}

func (s *tokenStore) Get(ctx context.Context, id string) (*model.Token, error) {
	key := tokenKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Token
		if err := msgpack.Unmarshal(data, &cached); err == nil {
			metrics.CacheHits.WithLabelValues("token").Inc()
			return &cached, nil
		}
	}
	metrics.CacheMisses.WithLabelValues("token").Inc()

	token, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := msgpack.Marshal(token); err == nil {
		_ = s.cache.Set(ctx, key, payload, s.ttl)
	}
	return token, nil
}

func (s *tokenStore) Put(ctx context.Context, token *model.Token) error {
	if err := s.cache.Delete(ctx, tokenKey(token.Token)); err != nil {
		s.log.WithError(err).Warn("cache delete failed")
	}
	return s.repo.Create(ctx, token)
}

func (s *tokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}
