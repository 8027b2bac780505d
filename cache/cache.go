// Package cache stores cleaned metadata strings keyed by the input text and
// the rule sets applied to it. Scrobbling workloads see the same noisy
// titles repeatedly, so the service surface can skip re-filtering known
// inputs.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is the interface shared by the in-memory and Redis implementations.
type Cache interface {
	// Get returns the cached cleaned string for key, and whether it was
	// present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a cleaned string under key.
	Set(ctx context.Context, key, value string) error
	// Close releases resources held by the cache.
	Close() error
}

// Config holds cache settings shared by implementations.
type Config struct {
	Prefix          string
	TTL             time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig returns a cache config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Prefix:          "metafilter:",
		TTL:             15 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// Key builds the cache key for text cleaned with the named sets. Set order
// is part of the key because applying the same sets in a different order can
// produce a different result.
func Key(setNames []string, text string) string {
	return strings.Join(setNames, ",") + "|" + text
}

// applyDefaults returns config with default values filled in for any
// zero-valued fields.
func applyDefaults(config Config) Config {
	defaults := DefaultConfig()

	if config.Prefix == "" {
		config.Prefix = defaults.Prefix
	}
	if config.TTL == 0 {
		config.TTL = defaults.TTL
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	return config
}
