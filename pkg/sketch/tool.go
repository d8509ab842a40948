package sketch

import "image/color"

// Brush width presets in surface units.
const (
	Thin  = 2
	Thick = 5
)

// DefaultStickers are the built-in sticker glyphs.
var DefaultStickers = []string{"🍝", "🦴", "🧩"}

// Mode is the active tool.
type Mode int

const (
	ModeBrush Mode = iota
	ModeSticker
)

func (m Mode) String() string {
	if m == ModeSticker {
		return "sticker"
	}
	return "brush"
}

// ToolState is the current brush and sticker selection. A non-empty Sticker
// means sticker mode.
type ToolState struct {
	Width   float64
	Color   color.NRGBA
	Sticker string
}

// Mode reports whether the next pointer-down draws a stroke or places a
// sticker.
func (t ToolState) Mode() Mode {
	if t.Sticker != "" {
		return ModeSticker
	}
	return ModeBrush
}
