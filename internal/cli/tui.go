package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Pad styles
var (
	padHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	padPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	padErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

const padHelp = "drag draw  1 thin  2 thick  k color  s sticker  t text  b brush  u undo  r redo  c clear  e export  q quit"

// exportFunc starts an export of pic and reports the outcome as an exportedMsg.
type exportFunc func(pic sketch.Picture) tea.Cmd

// exportedMsg is the result of an export command.
type exportedMsg struct {
	paths  []string
	cached bool
	err    error
}

// =============================================================================
// padModel - Interactive drawing pad
// =============================================================================

// padModel turns terminal mouse and key events into pad operations. The
// pad draws onto live, which View shows as half-block cells.
type padModel struct {
	pad    *sketch.Pad
	live   *render.Raster
	grid   render.Grid
	export exportFunc

	// top is the terminal row where the canvas starts.
	top int

	entering  bool
	input     []rune
	exporting bool
	status    string
	err       error
}

func newPadModel(pad *sketch.Pad, live *render.Raster, export exportFunc) padModel {
	return padModel{
		pad:    pad,
		live:   live,
		grid:   render.DefaultGrid,
		export: export,
		top:    1,
	}
}

func (m padModel) Init() tea.Cmd {
	return nil
}

func (m padModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.updateEntry(msg), nil
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	case exportedMsg:
		m.exporting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = "exported " + strings.Join(msg.paths, ", ")
			if msg.cached {
				m.status += " (cached)"
			}
		}
	}
	return m, nil
}

func (m padModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "u":
		if !m.pad.Undo() {
			m.status = "nothing to undo"
		} else {
			m.status = ""
		}
	case "r":
		if !m.pad.Redo() {
			m.status = "nothing to redo"
		} else {
			m.status = ""
		}
	case "c":
		m.pad.Clear()
		m.status = "cleared"
	case "1":
		m.pad.Thin()
	case "2":
		m.pad.Thick()
	case "k":
		m.pad.RandomColor()
	case "b":
		m.pad.SelectSticker("")
	case "s":
		m.pad.SelectSticker(nextSticker(m.pad.Stickers(), m.pad.Tool().Sticker))
	case "t":
		m.entering = true
		m.input = m.input[:0]
	case "e":
		if m.exporting || m.export == nil {
			return m, nil
		}
		m.exporting = true
		m.status = "exporting..."
		return m, m.export(m.pad.Snapshot())
	}
	return m, nil
}

// updateEntry edits the custom sticker text. Enter adds and selects it.
func (m padModel) updateEntry(msg tea.KeyMsg) padModel {
	switch msg.Type {
	case tea.KeyEnter:
		text := string(m.input)
		m.entering = false
		m.input = nil
		if m.pad.AddCustomSticker(text) {
			m.pad.SelectSticker(text)
		}
	case tea.KeyEsc, tea.KeyCtrlC:
		m.entering = false
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m
}

// updateMouse maps a terminal cell to the canvas point at its center.
// Releases count anywhere on screen so a drag that leaves the canvas still
// ends.
func (m padModel) updateMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-m.top
	pos := m.grid.Point(col, row)
	inside := m.inside(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.pad.PointerDown(pos)
		}
	case tea.MouseActionMotion:
		switch {
		case inside:
			m.pad.PointerMove(pos)
		case !m.pad.Accumulating():
			m.pad.PointerLeave()
		}
	case tea.MouseActionRelease:
		m.pad.PointerUp(pos)
	}
}

func (m padModel) inside(col, row int) bool {
	return col >= 0 && row >= 0 &&
		col < m.grid.Cols(m.live.Width()) && row < m.grid.Rows(m.live.Height())
}

func (m padModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(m.toolLine())
	b.WriteString("\n")

	b.WriteString(render.Present(m.live.Image(), m.grid))
	b.WriteString("\n")

	switch {
	case m.entering:
		b.WriteString(padPromptStyle.Render("sticker text: "))
		b.WriteString(string(m.input))
		b.WriteString(padHelpStyle.Render("▏ enter add  esc cancel"))
	case m.err != nil:
		b.WriteString(padErrorStyle.Render(iconError + " " + m.err.Error()))
	default:
		b.WriteString(padHelpStyle.Render(padHelp))
		if m.status != "" {
			b.WriteString("\n")
			b.WriteString(StyleDim.Render(m.status))
		}
	}
	return b.String()
}

// toolLine describes the current tool and history sizes.
func (m padModel) toolLine() string {
	tool := m.pad.Tool()
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(sketch.HexColor(tool.Color))).Render("●")

	var mode string
	if tool.Mode() == sketch.ModeSticker {
		mode = "sticker " + tool.Sticker
	} else {
		mode = fmt.Sprintf("brush %g", tool.Width)
	}
	history := fmt.Sprintf("%d drawn · %d undone", len(m.pad.Committed()), len(m.pad.RedoBuffer()))
	return swatch + " " + StyleValue.Render(mode) + StyleDim.Render("  "+history)
}

// nextSticker returns the sticker after current, wrapping around. From
// brush mode it returns the first sticker.
func nextSticker(stickers []string, current string) string {
	if len(stickers) == 0 {
		return ""
	}
	i := slices.Index(stickers, current)
	return stickers[(i+1)%len(stickers)]
}
