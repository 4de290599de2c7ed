package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/text"
)

func newSimView(t *testing.T, width, height int) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return NewView(screen, DefaultTheme()), screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, width, _ := screen.GetContents()
	if x >= width {
		t.Fatalf("x %d out of bounds (width %d)", x, width)
	}
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func cellStyle(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Style {
	t.Helper()
	cells, width, _ := screen.GetContents()
	return cells[y*width+x].Style
}

func TestRenderDocumentText(t *testing.T) {
	view, screen := newSimView(t, 20, 5)
	doc := text.NewDocument("abc\ndef")
	sels := cursor.NewSelectionSetAt(0)

	view.Render(doc, sels)

	for i, want := range "abc" {
		if got := cellRune(t, screen, i, 0); got != want {
			t.Errorf("cell (%d,0) = %q, want %q", i, got, want)
		}
	}
	for i, want := range "def" {
		if got := cellRune(t, screen, i, 1); got != want {
			t.Errorf("cell (%d,1) = %q, want %q", i, got, want)
		}
	}
}

func TestRenderSelectionHighlight(t *testing.T) {
	view, screen := newSimView(t, 20, 5)
	doc := text.NewDocument("abcdef")
	sels := cursor.NewSelectionSet(cursor.NewSelection(1, 3)) // "bc"

	view.Render(doc, sels)

	theme := DefaultTheme()
	if got := cellStyle(t, screen, 0, 0); got != theme.Text {
		t.Error("cell before selection should use text style")
	}
	if got := cellStyle(t, screen, 1, 0); got != theme.PrimarySelection {
		t.Error("selected cell should use primary selection style")
	}
	if got := cellStyle(t, screen, 3, 0); got != theme.Text {
		t.Error("cell after selection should use text style")
	}
}

func TestRenderSecondarySelections(t *testing.T) {
	view, screen := newSimView(t, 20, 5)
	doc := text.NewDocument("foo foo foo")
	sels := cursor.NewSelectionSet(cursor.NewSelection(0, 3))
	sels.Add(cursor.NewSelection(4, 7))

	view.Render(doc, sels)

	theme := DefaultTheme()
	if got := cellStyle(t, screen, 0, 0); got != theme.PrimarySelection {
		t.Error("primary selection style missing")
	}
	if got := cellStyle(t, screen, 4, 0); got != theme.SecondarySelection {
		t.Error("secondary selection style missing")
	}
}

func TestRenderStatusline(t *testing.T) {
	view, screen := newSimView(t, 40, 5)
	view.SetTitle("demo.txt")
	doc := text.NewDocument("hello")
	sels := cursor.NewSelectionSetAt(0)

	view.Render(doc, sels)

	// Statusline occupies the bottom row with the status style.
	theme := DefaultTheme()
	if got := cellStyle(t, screen, 0, 4); got != theme.Status {
		t.Error("statusline row should use status style")
	}
}

func TestRenderFollowsCaret(t *testing.T) {
	view, screen := newSimView(t, 20, 4) // 3 content rows
	content := "l0\nl1\nl2\nl3\nl4\nl5"
	doc := text.NewDocument(content)

	// Caret on line 5: viewport must scroll down.
	sels := cursor.NewSelectionSetAt(doc.LineStartOffset(5))
	view.Render(doc, sels)

	if got := cellRune(t, screen, 1, 2); got != '5' {
		t.Errorf("bottom content row shows %q, want '5'", got)
	}
}
