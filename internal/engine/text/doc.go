// Package text provides immutable document snapshots for selection
// commands.
//
// A Document is a point-in-time copy of a buffer's content. It exposes:
//
//   - Byte-offset reads (Text, TextRange, Len)
//   - Line access (LineText, LineStartOffset, LineEndOffset)
//   - Coordinate conversion between byte offsets and line/column points
//   - Word-range lookup under letter/digit/underscore boundary rules
//
// Documents never mutate after construction; commands that operate on a
// snapshot see a consistent view for the whole invocation. Each snapshot
// carries a RevisionID so callers can detect that a selection set was
// computed against stale content.
package text
