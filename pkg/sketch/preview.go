package sketch

import "github.com/google/uuid"

// Preview geometry.
const (
	PreviewRadius = 5
	PreviewAlpha  = 77 // 0.3 opacity
	GhostAlpha    = 128
)

// ComputePreview returns the transient drawable shown under the pointer at
// pos, or nil while an interaction is accumulating. In sticker mode it is a
// translucent ghost of the selected glyph; otherwise a translucent disc in
// the stroke color.
func ComputePreview(pos Point, tool ToolState, accumulating bool) Drawable {
	if accumulating {
		return nil
	}
	if tool.Mode() == ModeSticker {
		return RestoreSticker(uuid.Nil, tool.Sticker, pos, DefaultStickerSize, withAlpha(tool.Color, GhostAlpha))
	}
	return &Disc{
		center: pos,
		radius: PreviewRadius,
		color:  withAlpha(tool.Color, PreviewAlpha),
	}
}
