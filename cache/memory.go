package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-memory cache with TTL-based expiry and a background
// sweep goroutine.
type MemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	config  Config
	stopCh  chan struct{}
	doneCh  chan struct{}
}

type memoryEntry struct {
	value    string
	storedAt time.Time
}

// NewMemory creates a new in-memory cache with automatic cleanup.
func NewMemory(config Config) *MemoryCache {
	mc := &MemoryCache{
		entries: make(map[string]memoryEntry),
		config:  applyDefaults(config),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}

	go mc.cleanup()

	return mc
}

// Get returns the cached value for key, reporting a miss for expired
// entries.
func (mc *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	mc.mu.RLock()
	entry, exists := mc.entries[key]
	mc.mu.RUnlock()

	if !exists {
		return "", false, nil
	}

	if time.Since(entry.storedAt) >= mc.config.TTL {
		mc.mu.Lock()
		delete(mc.entries, key)
		mc.mu.Unlock()
		return "", false, nil
	}

	return entry.value, true, nil
}

// Set stores a value under key.
func (mc *MemoryCache) Set(ctx context.Context, key, value string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries[key] = memoryEntry{
		value:    value,
		storedAt: time.Now(),
	}
	return nil
}

// Close stops the cleanup goroutine and releases resources.
func (mc *MemoryCache) Close() error {
	close(mc.stopCh)
	<-mc.doneCh
	return nil
}

// cleanup periodically removes expired entries.
func (mc *MemoryCache) cleanup() {
	ticker := time.NewTicker(mc.config.CleanupInterval)
	defer ticker.Stop()
	defer close(mc.doneCh)

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

// removeExpired removes all entries past their TTL.
func (mc *MemoryCache) removeExpired() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for key, entry := range mc.entries {
		if time.Since(entry.storedAt) >= mc.config.TTL {
			delete(mc.entries, key)
		}
	}
}
