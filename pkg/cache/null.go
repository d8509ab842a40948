package cache

import (
	"context"
	"time"
)

// NullCache stores no artifacts. Every export through it renders afresh.
// The CLI uses it for the "none" backend and when no other backend can be
// opened.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that never holds an artifact.
func NewNullCache() Cache { return &NullCache{} }

// Get reports a miss for every key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the artifact.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
