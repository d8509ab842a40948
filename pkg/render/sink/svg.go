package sink

import (
	"bytes"
	"fmt"
	"html"
	"image/color"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/fonts"
	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// RenderSVG writes pic as standalone SVG markup.
func RenderSVG(pic sketch.Picture, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	if err := errors.ValidateScale(c.scale); err != nil {
		return nil, err
	}

	side := pic.Size * c.scale
	rec := render.NewRecorder(side, side)
	pic.RenderExport(rec, c.scale)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		side, side, side, side)

	for _, op := range rec.Ops {
		switch op.Kind {
		case render.OpBackground:
			fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
				sketch.HexColor(op.Color), opacity("fill", op.Color))
		case render.OpLine:
			fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="butt"%s/>`+"\n",
				op.From.X, op.From.Y, op.To.X, op.To.Y, sketch.HexColor(op.Color), op.Width, opacity("stroke", op.Color))
		case render.OpText:
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" fill="%s"%s>%s</text>`+"\n",
				op.From.X, op.From.Y, html.EscapeString(fonts.FallbackFontFamily), op.Width,
				sketch.HexColor(op.Color), opacity("fill", op.Color), html.EscapeString(op.Text))
		case render.OpCircle:
			fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>`+"\n",
				op.From.X, op.From.Y, op.Width, sketch.HexColor(op.Color), opacity("fill", op.Color))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func opacity(attr string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(c.A)/255)
}
