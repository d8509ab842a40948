package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// ReadJSON decodes a picture written by [WriteJSON].
//
// A missing size defaults to [sketch.DefaultSize]. Drawables without an ID
// get a fresh one. ReadJSON does not close r.
func ReadJSON(r io.Reader) (sketch.Picture, error) {
	var data picture
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return sketch.Picture{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode picture")
	}
	if data.Size == 0 {
		data.Size = sketch.DefaultSize
	}
	if err := errors.ValidateCanvasSize(data.Size); err != nil {
		return sketch.Picture{}, err
	}

	ds := make([]sketch.Drawable, 0, len(data.Drawables))
	for i, raw := range data.Drawables {
		d, err := raw.decode()
		if err != nil {
			return sketch.Picture{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "drawable %d", i)
		}
		ds = append(ds, d)
	}
	return sketch.NewPicture(data.Size, ds...), nil
}

// ImportJSON reads a JSON picture file at path.
func ImportJSON(path string) (sketch.Picture, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return sketch.Picture{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return sketch.Picture{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func (raw drawable) decode() (sketch.Drawable, error) {
	id := uuid.New()
	if raw.ID != "" {
		parsed, err := uuid.Parse(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", raw.ID, err)
		}
		id = parsed
	}
	c, err := sketch.ParseColor(raw.Color)
	if err != nil {
		return nil, err
	}

	switch sketch.Kind(raw.Kind) {
	case sketch.KindStroke:
		if err := errors.ValidateWidth(raw.Width); err != nil {
			return nil, err
		}
		pts := make([]sketch.Point, len(raw.Points))
		for i, p := range raw.Points {
			pts[i] = sketch.Pt(p[0], p[1])
		}
		return sketch.RestoreStroke(id, raw.Width, c, pts...), nil
	case sketch.KindSticker:
		if raw.Glyph == "" {
			return nil, fmt.Errorf("sticker without glyph")
		}
		if raw.Anchor == nil {
			return nil, fmt.Errorf("sticker without anchor")
		}
		size := raw.Size
		if size == 0 {
			size = sketch.DefaultStickerSize
		}
		if size < 0 {
			return nil, fmt.Errorf("sticker size must be positive, got %v", size)
		}
		return sketch.RestoreSticker(id, raw.Glyph, sketch.Pt(raw.Anchor[0], raw.Anchor[1]), size, c), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", raw.Kind)
	}
}
