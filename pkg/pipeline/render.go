package pipeline

import (
	"fmt"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/render/sink"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Render generates output artifacts in the requested formats without caching.
func Render(pic sketch.Picture, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(pic, format, opts.Scale)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(pic sketch.Picture, format string, scale float64) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPNG:
		data, err = sink.RenderPNG(pic, sink.WithScale(scale))
	case FormatPDF:
		data, err = sink.RenderPDF(pic, sink.WithScale(scale))
	case FormatSVG:
		data, err = sink.RenderSVG(pic, sink.WithScale(scale))
	case FormatJSON:
		data, err = sink.RenderJSON(pic)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
