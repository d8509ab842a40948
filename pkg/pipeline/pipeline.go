// Package pipeline provides the export pipeline for sketchpad.
//
// This package turns a committed [sketch.Picture] into file artifacts. The
// interactive pad, the script replayer and the render command all export
// through the same [Runner], so every entry point produces the same bytes for
// the same picture.
//
// # Architecture
//
// An export has two stages:
//
//  1. Hash: the picture is serialized to canonical JSON (without drawable
//     IDs) and hashed, so identical drawings share cache entries. JSON
//     artifacts embed the IDs and are keyed by them as well
//  2. Render: each requested format is looked up in the cache and rendered
//     through its sink on a miss (PNG, PDF, SVG, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Export(ctx, pad.Snapshot(), pipeline.Options{
//	    Formats: []string{"png", "svg"},
//	    Scale:   4,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/cache"
	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the export up-scale factor.
	DefaultScale = sketch.DefaultScale

	// DefaultFilename is the base name of exported files.
	DefaultFilename = "canvas"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormat is written when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatPDF:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Export Configuration
// =============================================================================

// Options configures an export run.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh skips cache lookups. Fresh artifacts are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of an export run.
type Result struct {
	// PictureHash is the content hash of the exported picture.
	PictureHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains export statistics.
type Stats struct {
	Drawables  int
	PixelSize  int
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits      map[string]bool // Format -> served from cache
	RenderHit bool            // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, pdf, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list such as "png,svg".
// Blank entries and duplicates are dropped.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks formats and scale.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one format of pic. JSON
// artifacts carry drawable IDs, so their keys include them.
func (o *Options) ArtifactKeyOpts(format string, pic sketch.Picture) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
		Size:   pic.Size,
	}
	if format == FormatJSON {
		opts.Identity = identity(pic)
	}
	return opts
}

// identity hashes the drawable IDs of pic in order.
func identity(pic sketch.Picture) string {
	var sb strings.Builder
	for _, d := range pic.Drawables() {
		sb.WriteString(d.ID().String())
		sb.WriteByte(',')
	}
	return cache.Hash([]byte(sb.String()))
}

// Filename returns the output file name for format, e.g. "canvas.png".
func Filename(base, format string) string {
	if base == "" {
		base = DefaultFilename
	}
	return base + "." + format
}
