package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a small TTL key/value cache. The chatbot service keeps serialized
// suggestion responses in it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Key derives a stable cache key from request parts.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return "combo:" + hex.EncodeToString(h.Sum(nil))
}

// New picks a backend: Redis when an address is configured, otherwise an
// in-process store. Returns nil when caching is disabled.
func New(enabled bool, addr string, ttl time.Duration) (Store, error) {
	if !enabled {
		return nil, nil
	}
	if addr != "" {
		return NewRedisStore(addr, ttl)
	}
	return NewMemoryStore(ttl), nil
}
