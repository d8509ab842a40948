package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/cache"
	pio "github.com/matzehuels/sketchpad/pkg/io"
	"github.com/matzehuels/sketchpad/pkg/observability"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Runner encapsulates export execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store export results. Multiple goroutines can safely use the same
// Runner with different pictures.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Export renders pic in every requested format, serving artifacts from the
// cache where possible.
func (r *Runner) Export(ctx context.Context, pic sketch.Picture, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	observability.Export().OnExportStart(ctx, opts.Formats, opts.Scale)
	defer func() {
		observability.Export().OnExportComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	hash, err := PictureHash(pic)
	if err != nil {
		return nil, err
	}

	result = &Result{
		PictureHash: hash,
		Artifacts:   make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Drawables: pic.Len(),
			PixelSize: pic.PixelSize(opts.Scale),
		},
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	allHit := true
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.artifact(ctx, pic, hash, format, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		result.CacheInfo.Hits[format] = hit
		allHit = allHit && hit
	}
	result.CacheInfo.RenderHit = allHit
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Info("exported picture",
		"drawables", result.Stats.Drawables,
		"formats", opts.Formats,
		"cached", allHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// artifact returns one format, from the cache or freshly rendered.
func (r *Runner) artifact(ctx context.Context, pic sketch.Picture, hash, format string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format, pic))
	keyType := "artifact:" + format

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache lookup failed", "format", format, "error", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyType)
			opts.Logger.Debug("cache hit", "format", format)
			return data, true, nil
		default:
			observability.Cache().OnCacheMiss(ctx, keyType)
		}
	}

	data, err := renderFormat(pic, format, opts.Scale)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		opts.Logger.Warn("cache store failed", "format", format, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}

// PictureHash returns the content hash of pic. Drawable IDs are excluded, so
// two pictures with the same drawables in the same order hash equally.
func PictureHash(pic sketch.Picture) (string, error) {
	var buf bytes.Buffer
	if err := pio.WriteJSON(pic, &buf, pio.WithoutIDs(), pio.Compact()); err != nil {
		return "", fmt.Errorf("serialize picture for cache key: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
