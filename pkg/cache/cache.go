// Package cache stores rendered export artifacts keyed by picture content.
//
// An export renders the same committed picture into one or more formats. The
// rendered bytes depend only on the picture, the format, the scale factor and
// the base canvas size, so they can be reused across runs. Three backends are
// provided:
//   - [FileCache]: JSON entries under an XDG cache directory, for the CLI
//   - [RedisCache]: a shared redis instance
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer]. [ScopedKeyer] prefixes every key so that
// artifacts from different renderer builds never collide.
package cache

import (
	"context"
	"fmt"
	"time"
)

// ArtifactTTL is how long rendered artifacts are kept by default.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored bytes and true, or nil and false on a miss.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// ArtifactKeyOpts holds the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	Size   float64 `json:"size"`
	// Identity distinguishes pictures whose artifacts embed drawable IDs.
	Identity string `json:"identity,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the picture
	// identified by pictureHash.
	ArtifactKey(pictureHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the picture hash together with the options.
func (DefaultKeyer) ArtifactKey(pictureHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), pictureHash, opts)
}
