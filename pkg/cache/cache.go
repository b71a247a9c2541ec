// Package cache stores rendered transition graphs.
//
// Rendering SVG runs Graphviz in a WebAssembly runtime, which takes far
// longer than the enumeration that feeds it. Graph artifacts are content
// addressed by the DOT source that produced them, so an entry never goes
// stale and the CLI can keep them without a TTL.
//
// Two implementations are provided: [FileCache] for the CLI, storing one
// file per entry under the user's cache directory, and [NullCache] for
// tests and --no-cache runs.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by strings from [GraphKey].
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for storage failures. A ttl of zero in Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
