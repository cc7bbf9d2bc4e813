// Package cache stores rendered API payloads so repeated filter queries skip
// the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jimezsa/scholarcli/internal/models"
)

var ErrCacheMiss = errors.New("cache miss")

// Prefix namespaces every key this program writes.
const Prefix = "scholarcli:"

type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Invalidate drops every key starting with prefix.
	Invalidate(ctx context.Context, prefix string) error
	Close() error
}

// ListKey builds a stable key for one filter selection. Values are kept
// verbatim: categorical filters are case-sensitive and the query is not
// trimmed, so any difference may change the result.
func ListKey(c models.FilterCriteria) string {
	values := url.Values{}
	values.Set("country", c.Country)
	values.Set("degree_level", c.DegreeLevel)
	values.Set("subject", c.Subject)
	values.Set("q", c.SearchQuery)
	return Prefix + "list:" + values.Encode()
}

type Redis struct {
	client *redis.Client
}

// NewRedis parses redisURL and verifies connectivity.
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, prefix string) error {
	pattern := prefix + "*"
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("redis delete %s: %w", key, err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan pattern %s: %w", pattern, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) error                { return ErrCacheMiss }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Invalidate(context.Context, string) error              { return nil }
func (Noop) Close() error                                          { return nil }

type entry struct {
	payload []byte
	expires time.Time
}

// Memory is an in-process cache for single-node serving.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]entry{}, now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(e.payload, dest)
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	e := entry{payload: payload}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// Open picks redis when a URL is configured and the in-process cache
// otherwise.
func Open(ctx context.Context, redisURL string) (Cache, error) {
	if strings.TrimSpace(redisURL) == "" {
		return NewMemory(), nil
	}
	return NewRedis(ctx, redisURL)
}
