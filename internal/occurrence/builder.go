package occurrence

import "github.com/dshills/multisel/internal/engine/text"

// PositionMapper converts byte offsets to line/column points. It is the
// only document capability the builder needs, so tests can supply a
// bare mapping without a full document.
type PositionMapper interface {
	OffsetToPoint(offset text.ByteOffset) text.Point
}

// Ranges builds one byte range per offset: [off, off+length). Output
// order matches input order; overlapping ranges are not merged and
// duplicates are not removed.
func Ranges(offsets []text.ByteOffset, length int) []text.Range {
	ranges := make([]text.Range, len(offsets))
	for i, off := range offsets {
		ranges[i] = text.Range{Start: off, End: off + text.ByteOffset(length)}
	}
	return ranges
}

// PositionRanges builds one position range per offset by mapping the
// start and end offsets through the document's coordinate system.
func PositionRanges(mapper PositionMapper, offsets []text.ByteOffset, length int) []text.PositionRange {
	ranges := make([]text.PositionRange, len(offsets))
	for i, off := range offsets {
		ranges[i] = text.PositionRange{
			Start: mapper.OffsetToPoint(off),
			End:   mapper.OffsetToPoint(off + text.ByteOffset(length)),
		}
	}
	return ranges
}
