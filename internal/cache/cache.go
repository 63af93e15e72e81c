package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and turns every operation into a no-op, which is how
// caching is disabled. Every operation is bounded by a short timeout so a
// slow cache can only add bounded latency, never break a call.
type Client struct {
	client  *redis.Client
	timeout time.Duration
}

// New creates a new Redis client.
func New(addr, password string, db int, timeout time.Duration) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts), timeout: timeout}
}

// NewFromRedis wraps an existing redis client. Used by tests.
func NewFromRedis(client *redis.Client, timeout time.Duration) *Client {
	return &Client{client: client, timeout: timeout}
}

func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

// Flush drops every cached entry. Advisory maintenance only.
func (c *Client) Flush(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		return nil
	}
	return nil
}
