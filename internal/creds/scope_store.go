package creds

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"gatekeeper/internal/cache"
	"gatekeeper/internal/metrics"
	"gatekeeper/internal/model"
	"gatekeeper/internal/repository"
)

// scopesKey is the single aggregate cache entry holding every active scope
// name. It is invalidated whenever a scope is created.
const scopesKey = "scopes"

// ScopeStore is cache-aside access to the scope registry.
type ScopeStore interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
}

type scopeStore struct {
	repo  repository.ScopeRepository
	cache *cache.Client
	ttl   time.Duration
	log   *logrus.Logger
}

// NewScopeStore composes the scope repository with the cache layer.
func NewScopeStore(repo repository.ScopeRepository, cache *cache.Client, ttl time.Duration, log *logrus.Logger) ScopeStore {
	return &scopeStore{repo: repo, cache: cache, ttl: ttl, log: log}
}

func (s *scopeStore) List(ctx context.Context) ([]string, error) {
	if data, _ := s.cache.Get(ctx, scopesKey); data != nil {
		var cached []string
		if err := msgpack.Unmarshal(data, &cached); err == nil {
			metrics.CacheHits.WithLabelValues("scopes").Inc()
			return cached, nil
		}
	}
	metrics.CacheMisses.WithLabelValues("scopes").Inc()

	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := msgpack.Marshal(names); err == nil {
		_ = s.cache.Set(ctx, scopesKey, payload, s.ttl)
	}
	return names, nil
}

func (s *scopeStore) Add(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, scopesKey); err != nil {
		s.log.WithError(err).Warn("cache delete failed")
	}
	return s.repo.Create(ctx, &model.Scope{Name: name})
}
