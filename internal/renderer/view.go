// Package renderer draws the document, selections, and statusline to a
// tcell screen.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/text"
)

// View renders a document with its selections. One statusline row is
// reserved at the bottom of the screen.
type View struct {
	screen  tcell.Screen
	theme   Theme
	topLine uint32
	message string
	title   string
}

// NewView creates a view on the given screen.
func NewView(screen tcell.Screen, theme Theme) *View {
	return &View{screen: screen, theme: theme}
}

// SetTitle sets the statusline title (typically the file name).
func (v *View) SetTitle(title string) {
	v.title = title
}

// SetMessage sets the transient statusline message.
func (v *View) SetMessage(msg string) {
	v.message = msg
}

// ScrollTo adjusts the viewport so the given line is visible.
// Implements the dispatcher's renderer capability.
func (v *View) ScrollTo(line, col uint32) {
	_, height := v.screen.Size()
	visible := contentHeight(height)
	if visible <= 0 {
		return
	}
	if line < v.topLine {
		v.topLine = line
	} else if line >= v.topLine+uint32(visible) {
		v.topLine = line - uint32(visible) + 1
	}
}

// Redraw syncs the full screen on the next Render.
// Implements the dispatcher's renderer capability.
func (v *View) Redraw() {
	v.screen.Sync()
}

// Render draws the document, selection highlights, caret, and
// statusline, then shows the result.
func (v *View) Render(doc *text.Document, sels *cursor.SelectionSet) {
	v.screen.Clear()

	width, height := v.screen.Size()
	visible := contentHeight(height)

	caret := sels.Primary().Head
	v.followCaret(doc.OffsetToPoint(caret).Line, visible)

	for row := 0; row < visible; row++ {
		line := v.topLine + uint32(row)
		if line >= doc.LineCount() {
			break
		}
		v.renderLine(doc, sels, line, row, width)
	}

	v.showCaret(doc, caret, visible)
	v.renderStatus(doc, sels, width, height)
	v.screen.Show()
}

// renderLine draws one document line at screen row. Cell widths follow
// grapheme cluster boundaries so wide runes and combining marks line
// up with the terminal.
func (v *View) renderLine(doc *text.Document, sels *cursor.SelectionSet, line uint32, row, width int) {
	lineStart := doc.LineStartOffset(line)
	gr := uniseg.NewGraphemes(doc.LineText(line))

	col := 0
	offset := lineStart
	for gr.Next() && col < width {
		cluster := gr.Str()
		style := v.styleAt(sels, offset)

		runes := gr.Runes()
		v.screen.SetContent(col, row, runes[0], runes[1:], style)

		col += gr.Width()
		offset += text.ByteOffset(len(cluster))
	}
}

// styleAt picks the style for the cell at the given byte offset.
func (v *View) styleAt(sels *cursor.SelectionSet, offset text.ByteOffset) tcell.Style {
	primary := sels.Primary()
	if primary.Range().Contains(offset) {
		return v.theme.PrimarySelection
	}
	for _, sel := range sels.All() {
		if sel.Range().Contains(offset) {
			return v.theme.SecondarySelection
		}
	}
	return v.theme.Text
}

// showCaret positions the hardware cursor on the primary head.
func (v *View) showCaret(doc *text.Document, caret text.ByteOffset, visible int) {
	point := doc.OffsetToPoint(caret)
	if point.Line < v.topLine || point.Line >= v.topLine+uint32(visible) {
		v.screen.HideCursor()
		return
	}

	// Convert the byte column to a screen column.
	lineStart := doc.LineStartOffset(point.Line)
	prefix := doc.TextRange(lineStart, caret)
	v.screen.ShowCursor(uniseg.StringWidth(prefix), int(point.Line-v.topLine))
}

// renderStatus draws the statusline on the bottom row.
func (v *View) renderStatus(doc *text.Document, sels *cursor.SelectionSet, width, height int) {
	if height == 0 {
		return
	}
	row := height - 1

	point := doc.OffsetToPoint(sels.Primary().Head)
	status := fmt.Sprintf(" %s  %d:%d", v.title, point.Line+1, point.Column+1)
	if sels.IsMulti() {
		status += fmt.Sprintf("  [%d selections]", sels.Count())
	}
	if v.message != "" {
		status += "  " + v.message
	}

	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		v.screen.SetContent(col, row, r, nil, v.theme.Status)
		col++
	}
	for ; col < width; col++ {
		v.screen.SetContent(col, row, ' ', nil, v.theme.Status)
	}
}

// followCaret keeps the caret line inside the viewport.
func (v *View) followCaret(line uint32, visible int) {
	if visible <= 0 {
		return
	}
	if line < v.topLine {
		v.topLine = line
	} else if line >= v.topLine+uint32(visible) {
		v.topLine = line - uint32(visible) + 1
	}
}

// contentHeight returns the rows available for document content.
func contentHeight(screenHeight int) int {
	if screenHeight <= 1 {
		return 0
	}
	return screenHeight - 1
}
