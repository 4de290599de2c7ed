package text

import "fmt"

// ByteOffset represents a byte position in a document.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in bytes from the start of the line.
type Point struct {
	Line   uint32 // 0-indexed line number
	Column uint32 // 0-indexed column (byte offset within line)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// PositionRange is a range expressed in line/column coordinates.
// It is the boundary form used when handing selections to a host
// that speaks positions rather than byte offsets.
type PositionRange struct {
	Start Point
	End   Point
}

// String returns a human-readable representation of the position range.
func (pr PositionRange) String() string {
	return fmt.Sprintf("[%s-%s]", pr.Start, pr.End)
}

// IsEmpty returns true if the range covers no text.
func (pr PositionRange) IsEmpty() bool {
	return pr.Start == pr.End
}
