// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drawing history changes, exports, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the sketch core never
// imports a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSketchHooks(&mySketchHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, formats, scale)
//	// ... render artifacts ...
//	observability.Export().OnExportComplete(ctx, formats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Sketch Hooks
// =============================================================================

// SketchHooks receives events when the drawing history changes.
//
// Hooks run synchronously on the caller's goroutine and must not call back
// into the pad that fired them.
type SketchHooks interface {
	// OnCommit records a new drawable on top of the committed stack.
	OnCommit(kind, id string, committed int)

	// OnUndo records a drawable moved from committed to the redo buffer.
	OnUndo(kind, id string, committed, redo int)

	// OnRedo records a drawable moved back from the redo buffer.
	OnRedo(kind, id string, committed, redo int)

	// OnClear records a clear; dropped is the number of committed drawables removed.
	OnClear(dropped int)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from the export pipeline.
type ExportHooks interface {
	OnExportStart(ctx context.Context, formats []string, scale float64)
	OnExportComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSketchHooks is a no-op implementation of SketchHooks.
type NoopSketchHooks struct{}

func (NoopSketchHooks) OnCommit(string, string, int)    {}
func (NoopSketchHooks) OnUndo(string, string, int, int) {}
func (NoopSketchHooks) OnRedo(string, string, int, int) {}
func (NoopSketchHooks) OnClear(int)                     {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, []string, float64)                 {}
func (NoopExportHooks) OnExportComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sketchHooks SketchHooks = NoopSketchHooks{}
	exportHooks ExportHooks = NoopExportHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSketchHooks registers custom sketch hooks.
// This should be called once at application startup before any pad is created.
func SetSketchHooks(h SketchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sketchHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Sketch returns the registered sketch hooks.
func Sketch() SketchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sketchHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sketchHooks = NoopSketchHooks{}
	exportHooks = NoopExportHooks{}
	cacheHooks = NoopCacheHooks{}
}
