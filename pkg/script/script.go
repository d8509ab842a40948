// Package script replays recorded pointer and tool events onto a sketch pad.
//
// A script is a TOML document with an optional [canvas] table and a list of
// [[step]] tables. Each step names one action:
//
//	[canvas]
//	size = 256
//	sticky_stickers = false
//
//	[[step]]
//	action = "stroke"
//	path = [[10, 10], [20, 10], [30, 10]]
//
//	[[step]]
//	action = "sticker"
//	sticker = "🍝"
//
//	[[step]]
//	action = "down"
//	at = [50, 50]
//
//	[[step]]
//	action = "export"
//	name = "canvas"
//
// Replaying drives the same Pad methods an interactive front end calls, so a
// script reproduces a drawing session exactly, without a terminal.
package script

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Actions.
const (
	ActionDown          = "down"
	ActionMove          = "move"
	ActionUp            = "up"
	ActionLeave         = "leave"
	ActionStroke        = "stroke"
	ActionWidth         = "width"
	ActionThin          = "thin"
	ActionThick         = "thick"
	ActionColor         = "color"
	ActionRandomColor   = "random-color"
	ActionSticker       = "sticker"
	ActionBrush         = "brush"
	ActionCustomSticker = "custom-sticker"
	ActionUndo          = "undo"
	ActionRedo          = "redo"
	ActionClear         = "clear"
	ActionExport        = "export"
)

var validActions = map[string]bool{
	ActionDown: true, ActionMove: true, ActionUp: true, ActionLeave: true,
	ActionStroke: true, ActionWidth: true, ActionThin: true, ActionThick: true,
	ActionColor: true, ActionRandomColor: true, ActionSticker: true,
	ActionBrush: true, ActionCustomSticker: true, ActionUndo: true,
	ActionRedo: true, ActionClear: true, ActionExport: true,
}

// Script is a parsed event script.
type Script struct {
	Canvas Canvas `toml:"canvas"`
	Steps  []Step `toml:"step"`
}

// Canvas holds pad settings a script may override.
type Canvas struct {
	Size           float64  `toml:"size"`
	Seed           uint64   `toml:"seed"`
	StickyStickers bool     `toml:"sticky_stickers"`
	Palette        []string `toml:"palette"`
	Stickers       []string `toml:"stickers"`
}

// Step is one scripted event.
type Step struct {
	Action  string      `toml:"action"`
	At      []float64   `toml:"at"`
	Path    [][]float64 `toml:"path"`
	Width   float64     `toml:"width"`
	Color   string      `toml:"color"`
	Sticker string      `toml:"sticker"`
	Text    string      `toml:"text"`
	Name    string      `toml:"name"`
	Scale   float64     `toml:"scale"`
}

// Parse decodes and validates a script. Unknown keys are rejected so that
// typos do not silently change a drawing.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read script %s", path)
	}
	return Parse(data)
}

// Validate checks every step. Errors carry the 1-based step number.
func (s *Script) Validate() error {
	if s.Canvas.Size != 0 {
		if err := errors.ValidateCanvasSize(s.Canvas.Size); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "canvas")
		}
	}
	if _, err := sketch.ParsePalette(s.Canvas.Palette); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScript, err, "canvas palette")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d (%s)", i+1, st.Action)
		}
	}
	return nil
}

func (st Step) validate() error {
	if !validActions[st.Action] {
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", st.Action)
	}
	switch st.Action {
	case ActionDown, ActionMove, ActionUp:
		if _, err := point(st.At); err != nil {
			return err
		}
	case ActionStroke:
		if len(st.Path) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "path is empty")
		}
		for _, p := range st.Path {
			if _, err := point(p); err != nil {
				return err
			}
		}
	case ActionWidth:
		return errors.ValidateWidth(st.Width)
	case ActionColor:
		_, err := sketch.ParseColor(st.Color)
		return err
	case ActionSticker:
		if strings.TrimSpace(st.Sticker) == "" {
			return errors.New(errors.ErrCodeInvalidInput, "sticker is empty")
		}
	case ActionExport:
		if st.Scale != 0 {
			return errors.ValidateScale(st.Scale)
		}
	}
	return nil
}

// ApplyTo copies the canvas settings that are set onto o.
func (c Canvas) ApplyTo(o *sketch.Options) error {
	if c.Size != 0 {
		o.Size = c.Size
	}
	if c.Seed != 0 {
		o.Seed = c.Seed
	}
	if c.StickyStickers {
		o.StickyStickers = true
	}
	if len(c.Palette) > 0 {
		p, err := sketch.ParsePalette(c.Palette)
		if err != nil {
			return err
		}
		o.Palette = p
	}
	if len(c.Stickers) > 0 {
		o.Stickers = c.Stickers
	}
	return nil
}

func point(xy []float64) (sketch.Point, error) {
	if len(xy) != 2 {
		return sketch.Point{}, errors.New(errors.ErrCodeInvalidInput, "point needs 2 coordinates, got %d", len(xy))
	}
	return sketch.Pt(xy[0], xy[1]), nil
}
