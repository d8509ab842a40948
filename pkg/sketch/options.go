package sketch

import (
	"image/color"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/errors"
)

// Defaults.
const (
	DefaultSize  = 256
	DefaultScale = 4
	DefaultSeed  = 42
)

// Options configures a Pad.
type Options struct {
	// Size is the edge length of the square canvas in surface units.
	Size float64

	// ExportScale is the up-scale factor ExportImage uses when called with 0.
	ExportScale float64

	// Palette is the set RandomColor picks from.
	Palette []color.NRGBA

	// Color is the initial stroke color. Zero means the first palette entry.
	Color color.NRGBA

	ThinWidth  float64
	ThickWidth float64

	// Stickers are the selectable sticker glyphs.
	Stickers []string

	// StickyStickers keeps the sticker selected after a placement. When
	// false the tool returns to brush mode.
	StickyStickers bool

	// RandomizeOnToolSwitch picks a random palette color whenever a brush
	// width is selected.
	RandomizeOnToolSwitch bool

	// Seed seeds the random color generator.
	Seed uint64

	// NewSurface creates off-screen export surfaces. ExportImage fails
	// without one.
	NewSurface SurfaceFactory

	Logger *log.Logger
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.ExportScale == 0 {
		o.ExportScale = DefaultScale
	}
	if len(o.Palette) == 0 {
		o.Palette = slices.Clone(DefaultPalette)
	}
	if o.Color == (color.NRGBA{}) {
		o.Color = o.Palette[0]
	}
	if o.ThinWidth == 0 {
		o.ThinWidth = Thin
	}
	if o.ThickWidth == 0 {
		o.ThickWidth = Thick
	}
	if o.Stickers == nil {
		o.Stickers = slices.Clone(DefaultStickers)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Validate checks option values. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := errors.ValidateCanvasSize(o.Size); err != nil {
		return err
	}
	if err := errors.ValidateScale(o.ExportScale); err != nil {
		return err
	}
	if err := errors.ValidateWidth(o.ThinWidth); err != nil {
		return err
	}
	if err := errors.ValidateWidth(o.ThickWidth); err != nil {
		return err
	}
	return nil
}
