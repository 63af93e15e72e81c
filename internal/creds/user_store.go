// Package creds provides cache-aside access to the credential entities.
// Reads consult the cache first and lazily populate it from the store;
// writes delete the cache entry before the store write is issued, so a
// completed write can never be shadowed by a stale cache entry. Cache
// failures never surface to callers.
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

// UserStore is cache-aside access to users.
type UserStore interface {
	Get(ctx context.Context, name string) (*model.User, error)
	Put(ctx context.Context, user *model.User) error
}

type userStore struct {
	repo  repository.UserRepository
	cache *cache.Client
	ttl   time.Duration
	log   *logrus.Logger
}

// NewUserStore composes the user repository with the cache layer.
func NewUserStore(repo repository.UserRepository, cache *cache.Client, ttl time.Duration, log *logrus.Logger) UserStore {
	return &userStore{repo: repo, cache: cache, ttl: ttl, log: log}
}

func userKey(name string) string {
	return "user_" + name
}

func (s *userStore) Get(ctx context.Context, name string) (*model.User, error) {
	key := userKey(name)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := msgpack.Unmarshal(data, &cached); err == nil {
			metrics.CacheHits.WithLabelValues("user").Inc()
			return &cached, nil
		}
		// undecodable entry counts as a miss
	}
	metrics.CacheMisses.WithLabelValues("user").Inc()

	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := msgpack.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, key, payload, s.ttl)
	}
	return user, nil
}

func (s *userStore) Put(ctx context.Context, user *model.User) error {
	// Invalidate before the write so a racing reader falls through to the
	// store instead of seeing an entry that predates this write.
	if err := s.cache.Delete(ctx, userKey(user.Name)); err != nil {
		s.log.WithError(err).WithField("user", user.Name).Warn("cache delete failed")
	}
	return s.repo.Create(ctx, user)
}
