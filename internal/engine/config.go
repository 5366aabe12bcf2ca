// Package engine holds the cross-cutting runtime pieces of go_portfolio:
// injected configuration, the tiered read cache, operational counters,
// and small text utilities.
package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	DatabaseURL          string
	RedisURL             string
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	MaxImportRunes       int // cap on imported summary/description length, 0 = default
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (portfolio).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
