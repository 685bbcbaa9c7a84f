// Package cache stores rendered chart artifacts.
//
// All backends implement [Cache]: [NullCache] disables caching, [FileCache]
// persists entries under a directory for the CLI, [MemoryCache] is a bounded
// in-process LRU and [RedisCache] is shared between server replicas.
//
// Keys are built by a [Keyer] so that the CLI and the server agree on them:
//
//	key := keyer.ArtifactKey(cache.Hash(definition), cache.ArtifactKeyOpts{Format: "svg", Width: 500, Height: 300})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    return data, nil
//	}
package cache

import (
	"context"
	"time"
)

// Default TTLs.
const (
	// TTLArtifact is how long rendered SVG, PNG, PDF and JSON outputs live.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with hit == false and a nil error. A ttl of zero means
// the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered output of the chart whose
	// canonical definition hashes to chartHash.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render option that changes the output bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Style   string `json:"style,omitempty"`
	Title   string `json:"title,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Popups  bool   `json:"popups,omitempty"`
	NoKey   bool   `json:"no_key,omitempty"`
	NoValue bool   `json:"no_values,omitempty"`
	Scale   int    `json:"scale,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the chart hash and options.
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}
