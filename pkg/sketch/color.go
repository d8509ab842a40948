package sketch

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sketchpad/pkg/errors"
)

var (
	// Black is the default stroke color.
	Black = color.NRGBA{A: 0xff}

	// White is the export background.
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DefaultPalette is the fixed set of colors the random color tool picks from.
var DefaultPalette = []color.NRGBA{
	Black,
	{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff}, // red
	{R: 0x3c, G: 0xb4, B: 0x4b, A: 0xff}, // green
	{R: 0x43, G: 0x63, B: 0xd8, A: 0xff}, // blue
	{R: 0xf5, G: 0x82, B: 0x31, A: 0xff}, // orange
	{R: 0x91, G: 0x1e, B: 0xb4, A: 0xff}, // purple
	{R: 0x46, G: 0xf0, B: 0xf0, A: 0xff}, // cyan
	{R: 0xf0, G: 0x32, B: 0xe6, A: 0xff}, // magenta
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if n := len(s); n != 4 && n != 7 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "parse color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParsePalette parses a list of hex colors. An empty list yields nil.
func ParsePalette(hex []string) ([]color.NRGBA, error) {
	if len(hex) == 0 {
		return nil, nil
	}
	out := make([]color.NRGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// HexColor formats the RGB channels of c as "#rrggbb". Alpha is dropped.
func HexColor(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
