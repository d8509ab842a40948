package sink

import (
	"bytes"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// RenderPNG rasterizes pic at the configured scale and encodes it as PNG.
func RenderPNG(pic sketch.Picture, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	if err := errors.ValidateScale(c.scale); err != nil {
		return nil, err
	}

	n := pic.PixelSize(c.scale)
	r, err := render.NewRaster(n, n)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pic.RenderExport(r, c.scale)

	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
