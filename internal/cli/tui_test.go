package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

func newTestModel(t *testing.T, export exportFunc) padModel {
	t.Helper()
	live, err := render.NewRaster(256, 256)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	t.Cleanup(func() { live.Close() })
	pad, err := sketch.New(live, sketch.Options{})
	if err != nil {
		t.Fatalf("sketch.New: %v", err)
	}
	return newPadModel(pad, live, export)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func send(m padModel, msgs ...tea.Msg) (padModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(padModel)
	}
	return m, cmd
}

func TestPadModelStroke(t *testing.T) {
	m := newTestModel(t, nil)
	// Canvas starts on row 1; cell (2,1) of the canvas is at terminal (2,2).
	m, _ = send(m,
		mouse(2, 2, tea.MouseActionPress),
		mouse(5, 2, tea.MouseActionMotion),
		mouse(8, 2, tea.MouseActionMotion),
		mouse(8, 2, tea.MouseActionRelease),
	)

	ds := m.pad.Committed()
	if len(ds) != 1 {
		t.Fatalf("committed = %d, want 1", len(ds))
	}
	st := ds[0].(*sketch.Stroke)
	want := []sketch.Point{m.grid.Point(2, 1), m.grid.Point(5, 1), m.grid.Point(8, 1)}
	if !slices.Equal(st.Points(), want) {
		t.Errorf("points = %v, want %v", st.Points(), want)
	}
	if m.pad.Accumulating() {
		t.Error("release should end the stroke")
	}
}

func TestPadModelReleaseOutside(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m,
		mouse(10, 10, tea.MouseActionPress),
		mouse(200, 10, tea.MouseActionMotion), // off canvas, ignored
		mouse(200, 10, tea.MouseActionRelease),
	)
	if m.pad.Accumulating() {
		t.Error("release outside the canvas should end the stroke")
	}
	if len(m.pad.Committed()) != 1 {
		t.Errorf("committed = %d, want 1", len(m.pad.Committed()))
	}
}

func TestPadModelPressOutside(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m, mouse(10, 0, tea.MouseActionPress)) // header row
	if len(m.pad.Committed()) != 0 {
		t.Error("press on the header should not draw")
	}
}

func TestPadModelHistoryKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m,
		mouse(1, 1, tea.MouseActionPress), mouse(1, 1, tea.MouseActionRelease),
		mouse(3, 3, tea.MouseActionPress), mouse(3, 3, tea.MouseActionRelease),
		key("u"),
	)
	if len(m.pad.Committed()) != 1 || len(m.pad.RedoBuffer()) != 1 {
		t.Fatalf("after undo: %d/%d", len(m.pad.Committed()), len(m.pad.RedoBuffer()))
	}
	m, _ = send(m, key("r"))
	if len(m.pad.Committed()) != 2 {
		t.Errorf("after redo: committed = %d", len(m.pad.Committed()))
	}
	m, _ = send(m, key("c"), key("u"))
	if len(m.pad.Committed()) != 0 || len(m.pad.RedoBuffer()) != 0 {
		t.Error("clear should empty both collections")
	}
	if m.status != "nothing to undo" {
		t.Errorf("status = %q", m.status)
	}
}

func TestPadModelToolKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, key("2"))
	if w := m.pad.Tool().Width; w != sketch.Thick {
		t.Errorf("width = %v, want %v", w, sketch.Thick)
	}
	m, _ = send(m, key("s"))
	if got := m.pad.Tool().Sticker; got != sketch.DefaultStickers[0] {
		t.Errorf("sticker = %q, want %q", got, sketch.DefaultStickers[0])
	}
	m, _ = send(m, key("s"))
	if got := m.pad.Tool().Sticker; got != sketch.DefaultStickers[1] {
		t.Errorf("sticker = %q, want %q", got, sketch.DefaultStickers[1])
	}
	m, _ = send(m, key("b"))
	if m.pad.Tool().Mode() != sketch.ModeBrush {
		t.Error("b should return to the brush")
	}
	before := m.pad.Tool().Color
	m, _ = send(m, key("k"))
	if m.pad.Tool().Color == before {
		t.Error("k should change the color")
	}
}

func TestPadModelCustomSticker(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m,
		key("t"), key("h"), key("i"), tea.KeyMsg{Type: tea.KeySpace},
		key("x"), tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.entering {
		t.Fatal("enter should close the prompt")
	}
	if !slices.Contains(m.pad.Stickers(), "hi ") {
		t.Errorf("stickers = %q", m.pad.Stickers())
	}
	if m.pad.Tool().Sticker != "hi " {
		t.Errorf("selected = %q", m.pad.Tool().Sticker)
	}

	// Whitespace is ignored and keys typed in the prompt are not commands.
	n := len(m.pad.Stickers())
	m, _ = send(m, key("t"), key("u"), tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(m, key("t"), tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.pad.Stickers()) != n {
		t.Errorf("stickers = %q", m.pad.Stickers())
	}
}

func TestPadModelExport(t *testing.T) {
	var exported []sketch.Picture
	export := func(pic sketch.Picture) tea.Cmd {
		exported = append(exported, pic)
		return func() tea.Msg { return exportedMsg{paths: []string{"canvas.png"}} }
	}
	m := newTestModel(t, export)
	m, _ = send(m, mouse(1, 1, tea.MouseActionPress), mouse(1, 1, tea.MouseActionRelease))

	m, cmd := send(m, key("e"))
	if cmd == nil || !m.exporting {
		t.Fatal("e should start an export")
	}
	if _, again := send(m, key("e")); again != nil {
		t.Error("a running export should not start another")
	}
	m, _ = send(m, cmd())
	if m.exporting || !strings.Contains(m.status, "canvas.png") {
		t.Errorf("status = %q, exporting = %v", m.status, m.exporting)
	}
	if len(exported) != 1 || exported[0].Len() != 1 {
		t.Errorf("exported = %d pictures", len(exported))
	}
}

func TestPadModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := send(m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPadModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	lines := strings.Split(view, "\n")
	// Header, 32 canvas rows, help line.
	if len(lines) != 34 {
		t.Errorf("view has %d lines, want 34", len(lines))
	}
	if !strings.Contains(lines[0], appName) || !strings.Contains(lines[0], "brush 2") {
		t.Errorf("header = %q", lines[0])
	}

	m.entering = true
	m.input = []rune("abc")
	if !strings.Contains(m.View(), "sticker text: abc") {
		t.Error("prompt not shown")
	}
}

func TestNextSticker(t *testing.T) {
	s := []string{"a", "b", "c"}
	tests := []struct{ cur, want string }{
		{"", "a"}, {"a", "b"}, {"c", "a"}, {"zzz", "a"},
	}
	for _, tt := range tests {
		if got := nextSticker(s, tt.cur); got != tt.want {
			t.Errorf("nextSticker(%q) = %q, want %q", tt.cur, got, tt.want)
		}
	}
	if nextSticker(nil, "a") != "" {
		t.Error("no stickers should yield brush")
	}
}
