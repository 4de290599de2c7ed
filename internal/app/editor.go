package app

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/text"
)

// Editor holds the host-side state for one open file: the current
// document snapshot and the active selections. It implements the
// document/selection capabilities the dispatcher needs.
type Editor struct {
	path string
	doc  *text.Document
	sels *cursor.SelectionSet
}

// OpenFile creates an editor for the file at path.
func OpenFile(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Editor{
		path: path,
		doc:  text.NewDocument(string(data)),
		sels: cursor.NewSelectionSetAt(0),
	}, nil
}

// NewEditor creates an editor over in-memory content.
func NewEditor(content string) *Editor {
	return &Editor{
		doc:  text.NewDocument(content),
		sels: cursor.NewSelectionSetAt(0),
	}
}

// Path returns the file path, or "" for in-memory content.
func (e *Editor) Path() string {
	return e.path
}

// Document returns the current document snapshot.
func (e *Editor) Document() *text.Document {
	return e.doc
}

// Selections returns the active selection set.
func (e *Editor) Selections() *cursor.SelectionSet {
	return e.sels
}

// Reload replaces the document with the current on-disk content. Extra
// selections are dropped because they were computed against the old
// revision; the caret stays near its previous offset, clamped to the
// new length.
func (e *Editor) Reload() error {
	if e.path == "" {
		return nil
	}
	data, err := os.ReadFile(e.path)
	if err != nil {
		return fmt.Errorf("reloading %s: %w", e.path, err)
	}

	caret := e.sels.Primary().Head
	e.doc = text.NewDocument(string(data))
	e.sels = cursor.NewSelectionSetAt(caret)
	e.sels.Clamp(e.doc.Len())
	return nil
}

// Caret returns the primary head offset.
func (e *Editor) Caret() text.ByteOffset {
	return e.sels.Primary().Head
}

// Movement. All moves collapse extra selections back to the primary;
// extend variants keep the anchor fixed.

// MoveLeft moves the caret one rune left.
func (e *Editor) MoveLeft(extend bool) {
	e.moveTo(e.prevRune(e.Caret()), extend)
}

// MoveRight moves the caret one rune right.
func (e *Editor) MoveRight(extend bool) {
	e.moveTo(e.nextRune(e.Caret()), extend)
}

// MoveUp moves the caret one line up, clamping the column.
func (e *Editor) MoveUp(extend bool) {
	point := e.doc.OffsetToPoint(e.Caret())
	if point.Line == 0 {
		return
	}
	point.Line--
	e.moveTo(e.doc.PointToOffset(point), extend)
}

// MoveDown moves the caret one line down, clamping the column.
func (e *Editor) MoveDown(extend bool) {
	point := e.doc.OffsetToPoint(e.Caret())
	if point.Line+1 >= e.doc.LineCount() {
		return
	}
	point.Line++
	e.moveTo(e.doc.PointToOffset(point), extend)
}

// MoveWordLeft moves the caret to the start of the previous word.
func (e *Editor) MoveWordLeft(extend bool) {
	e.moveTo(e.doc.PrevWordStart(e.Caret()), extend)
}

// MoveWordRight moves the caret to the start of the next word.
func (e *Editor) MoveWordRight(extend bool) {
	e.moveTo(e.doc.NextWordStart(e.Caret()), extend)
}

// MoveLineStart moves the caret to the start of the current line.
func (e *Editor) MoveLineStart(extend bool) {
	point := e.doc.OffsetToPoint(e.Caret())
	e.moveTo(e.doc.LineStartOffset(point.Line), extend)
}

// MoveLineEnd moves the caret to the end of the current line.
func (e *Editor) MoveLineEnd(extend bool) {
	point := e.doc.OffsetToPoint(e.Caret())
	e.moveTo(e.doc.LineEndOffset(point.Line), extend)
}

// moveTo moves the primary head. With extend the anchor stays; without
// it the selection collapses to a caret and extra selections drop.
func (e *Editor) moveTo(offset text.ByteOffset, extend bool) {
	primary := e.sels.Primary()
	if extend {
		e.sels.SetPrimary(primary.Extend(offset))
		return
	}
	e.sels.Clear()
	e.sels.SetPrimary(primary.MoveTo(offset))
}

// prevRune returns the offset one rune before off.
func (e *Editor) prevRune(off text.ByteOffset) text.ByteOffset {
	if off <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(e.doc.Text()[:off])
	return off - text.ByteOffset(size)
}

// nextRune returns the offset one rune after off.
func (e *Editor) nextRune(off text.ByteOffset) text.ByteOffset {
	if off >= e.doc.Len() {
		return e.doc.Len()
	}
	_, size := utf8.DecodeRuneInString(e.doc.Text()[off:])
	return off + text.ByteOffset(size)
}
