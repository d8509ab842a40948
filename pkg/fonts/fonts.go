// Package fonts provides the glyph faces used to draw sticker text.
//
// The Go Regular font from golang.org/x/image is compiled into the binary,
// so rasterizing text never depends on fonts installed on the host. The font
// is parsed once per process; [Faces] caches one face per point size.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name for vector output.
const FontFamily = "Go"

// FallbackFontFamily lists emoji-capable fallbacks for vector output, since
// the built-in font has no emoji glyphs.
const FallbackFontFamily = `'Go', 'Noto Color Emoji', 'Apple Color Emoji', 'Segoe UI Emoji', sans-serif`

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// RegularTTF returns the raw Go Regular TrueType data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Regular returns the parsed Go Regular font.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Faces caches font faces by size. Faces hold rasterization buffers, so a
// Faces value must not be shared between goroutines.
type Faces struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaces returns an empty face cache over the Go Regular font.
func NewFaces() (*Faces, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return &Faces{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns a face for size, in pixels at 72 DPI. If the face cannot be
// built it falls back to the fixed 7x13 bitmap face.
func (f *Faces) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.faces[size] = face
	return face
}

// Close releases every cached face.
func (f *Faces) Close() error {
	for size, face := range f.faces {
		face.Close()
		delete(f.faces, size)
	}
	return nil
}
