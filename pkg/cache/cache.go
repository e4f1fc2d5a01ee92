// Package cache provides pluggable caching for computed layouts and render
// artifacts.
//
// The layout engine is pure, so identical input always produces identical
// output; caching exists purely to skip recomputation and re-rendering when
// the same day schedule is requested repeatedly (typical for UI refreshes).
// Keys are derived from content hashes of the schedule, never from file
// paths or timestamps.
//
// Backends:
//   - [FileCache]: directory of JSON entries, for CLI usage
//   - [RedisCache]: shared cache for the HTTP API
//   - [MongoCache]: shared cache backed by a TTL collection
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface all backends implement.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A ttl of 0 on Set means the
// entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts carries the inputs, beyond the schedule itself, that change
// a computed layout.
type LayoutKeyOpts struct {
	Anchor string // wake anchor as "HH:MM"
}

// ArtifactKeyOpts carries the render settings that change an output artifact.
type ArtifactKeyOpts struct {
	Format string // "svg", "png", "dot", "json"
	Width  float64
	Height float64
}

// Keyer generates cache keys for the two cacheable stages. Implementations
// must be deterministic: the same inputs always yield the same key.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, given the hash of
	// the serialized schedule blocks.
	LayoutKey(scheduleHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, given the hash
	// of the serialized layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the inputs with SHA-256 under a per-stage prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(scheduleHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", scheduleHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
