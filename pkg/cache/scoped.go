package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The CLI scopes keys by build version so that artifacts rendered by an
// older binary are never served by a newer one.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.CachePrefix())
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(pictureHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(pictureHash, opts)
}
