// Package cache stores generated graphs between runs.
//
// Generating a graph is deterministic in its template, size and random
// seed, so the encoded graph can be reused by later commands that ask for
// the same graph. [FileCache] keeps entries on disk for the CLI;
// [NullCache] disables caching.
//
// Keys come from a [Keyer]:
//
//	k := cache.NewDefaultKeyer()
//	key := k.GraphKey(cache.GraphKeyOpts{Template: tplHash, Size: 10000, RandSeed: 1})
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    // decode data
//	}
package cache

import (
	"context"
	"time"
)

// TTLGraph is how long a generated graph stays cached.
const TTLGraph = 7 * 24 * time.Hour

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GraphKeyOpts identifies a generated graph.
type GraphKeyOpts struct {
	Template string `json:"template"` // hash of the encoded template
	Size     int    `json:"size"`
	RandSeed uint64 `json:"rand_seed"`
}

// Keyer derives cache keys.
type Keyer interface {
	GraphKey(opts GraphKeyOpts) string
}

// DefaultKeyer hashes key options under a fixed prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey returns "graph:<sha256 of opts>".
func (DefaultKeyer) GraphKey(opts GraphKeyOpts) string {
	return hashKey("graph", opts)
}
