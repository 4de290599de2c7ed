package text

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Errors returned by document operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// RevisionID identifies a document snapshot. Two documents with the
// same RevisionID hold identical content.
type RevisionID string

// NewRevisionID returns a fresh unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.New().String())
}

// Document is an immutable snapshot of a text buffer. All read and
// coordinate-conversion operations are safe for concurrent use because
// nothing mutates after construction. Line endings are normalized to LF.
type Document struct {
	content    string
	lineStarts []ByteOffset // byte offset of the first character of each line
	revisionID RevisionID
}

// NewDocument creates a document snapshot from a string.
func NewDocument(content string) *Document {
	content = normalizeLineEndings(content)
	return &Document{
		content:    content,
		lineStarts: indexLineStarts(content),
		revisionID: NewRevisionID(),
	}
}

// NewDocumentFromReader creates a document snapshot from an io.Reader.
func NewDocumentFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(string(data)), nil
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// indexLineStarts records the byte offset of every line start.
// Line 0 always starts at offset 0, even for an empty document.
func indexLineStarts(s string) []ByteOffset {
	starts := []ByteOffset{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return starts
}

// Read Operations

// Text returns the full document content.
func (d *Document) Text() string {
	return d.content
}

// TextRange returns text in the given byte range. Offsets outside the
// document are clamped.
func (d *Document) TextRange(start, end ByteOffset) string {
	start = d.clamp(start)
	end = d.clamp(end)
	if start >= end {
		return ""
	}
	return d.content[start:end]
}

// Len returns the total byte length of the document.
func (d *Document) Len() ByteOffset {
	return ByteOffset(len(d.content))
}

// IsEmpty returns true if the document has no content.
func (d *Document) IsEmpty() bool {
	return len(d.content) == 0
}

// LineCount returns the number of lines.
func (d *Document) LineCount() uint32 {
	return uint32(len(d.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (d *Document) LineText(line uint32) string {
	if int(line) >= len(d.lineStarts) {
		return ""
	}
	return d.content[d.LineStartOffset(line):d.LineEndOffset(line)]
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end map to the document length.
func (d *Document) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(d.lineStarts) {
		return d.Len()
	}
	return d.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of a line (before
// the newline).
func (d *Document) LineEndOffset(line uint32) ByteOffset {
	if int(line) >= len(d.lineStarts) {
		return d.Len()
	}
	if int(line) == len(d.lineStarts)-1 {
		return d.Len()
	}
	// Next line starts one past this line's newline.
	return d.lineStarts[line+1] - 1
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to line/column. Out-of-range
// offsets are clamped.
func (d *Document) OffsetToPoint(offset ByteOffset) Point {
	offset = d.clamp(offset)
	// Binary search for the containing line.
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - d.lineStarts[line]),
	}
}

// PointToOffset converts line/column to a byte offset. Points past the
// end of a line clamp to the line end; lines past the document clamp to
// the document end.
func (d *Document) PointToOffset(point Point) ByteOffset {
	if int(point.Line) >= len(d.lineStarts) {
		return d.Len()
	}
	offset := d.lineStarts[point.Line] + ByteOffset(point.Column)
	end := d.LineEndOffset(point.Line)
	if offset > end {
		return end
	}
	return offset
}

// Document State

// RevisionID returns the snapshot's revision ID.
func (d *Document) RevisionID() RevisionID {
	return d.revisionID
}

// clamp restricts an offset to the valid range [0, Len].
func (d *Document) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > d.Len() {
		return d.Len()
	}
	return offset
}
