package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is the fallback backend for single-instance deployments and
// tests. Expired entries are dropped lazily on read and by a janitor.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]memoryEntry
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		store: make(map[string]memoryEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.store[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrMiss
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.store, key)
		m.mu.Unlock()
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

func (m *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for key, entry := range m.store {
				if now.After(entry.expiresAt) {
					delete(m.store, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
