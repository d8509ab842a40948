package sink

import (
	"bytes"

	pio "github.com/matzehuels/sketchpad/pkg/io"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// RenderJSON exports the drawable list as indented JSON. Coordinates stay
// in base canvas units; the scale option does not apply.
func RenderJSON(pic sketch.Picture, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := pio.WriteJSON(pic, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
