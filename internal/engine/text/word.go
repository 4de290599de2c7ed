package text

import (
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r is a word character: a letter, a digit,
// or an underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordRangeAt returns the range of the contiguous word characters
// surrounding the given offset. A caret sitting immediately after the
// last character of a word still resolves to that word. Returns false
// when the offset does not touch any word character.
func (d *Document) WordRangeAt(offset ByteOffset) (Range, bool) {
	offset = d.clamp(offset)

	if !d.isWordAt(offset) {
		// Caret at the end boundary of a word counts as inside it.
		if prev, ok := d.runeBefore(offset); ok && IsWordRune(prev) {
			offset -= ByteOffset(utf8.RuneLen(prev))
		} else {
			return Range{}, false
		}
	}

	start := offset
	for {
		r, ok := d.runeBefore(start)
		if !ok || !IsWordRune(r) {
			break
		}
		start -= ByteOffset(utf8.RuneLen(r))
	}

	end := offset
	for end < d.Len() {
		r, size := utf8.DecodeRuneInString(d.content[end:])
		if !IsWordRune(r) {
			break
		}
		end += ByteOffset(size)
	}

	if start == end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// IsWordRange reports whether the given range exactly covers a word:
// word characters inside, non-word (or document edge) on both sides.
func (d *Document) IsWordRange(r Range) bool {
	wr, ok := d.WordRangeAt(r.Start)
	if !ok {
		return false
	}
	return wr.Start == r.Start && wr.End == r.End
}

// NextWordStart returns the offset of the first word character after
// offset, skipping the remainder of the current word and any
// separators. Returns the document end when no word follows.
func (d *Document) NextWordStart(offset ByteOffset) ByteOffset {
	offset = d.clamp(offset)
	for offset < d.Len() && d.isWordAt(offset) {
		_, size := utf8.DecodeRuneInString(d.content[offset:])
		offset += ByteOffset(size)
	}
	for offset < d.Len() && !d.isWordAt(offset) {
		_, size := utf8.DecodeRuneInString(d.content[offset:])
		offset += ByteOffset(size)
	}
	return offset
}

// PrevWordStart returns the start offset of the word before offset.
// Returns 0 when no word precedes it.
func (d *Document) PrevWordStart(offset ByteOffset) ByteOffset {
	offset = d.clamp(offset)
	for {
		r, ok := d.runeBefore(offset)
		if !ok || IsWordRune(r) {
			break
		}
		offset -= ByteOffset(utf8.RuneLen(r))
	}
	for {
		r, ok := d.runeBefore(offset)
		if !ok || !IsWordRune(r) {
			break
		}
		offset -= ByteOffset(utf8.RuneLen(r))
	}
	return offset
}

// isWordAt reports whether the rune starting at offset is a word rune.
func (d *Document) isWordAt(offset ByteOffset) bool {
	if offset >= d.Len() {
		return false
	}
	r, _ := utf8.DecodeRuneInString(d.content[offset:])
	return IsWordRune(r)
}

// runeBefore returns the rune ending at offset, if any.
func (d *Document) runeBefore(offset ByteOffset) (rune, bool) {
	if offset <= 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(d.content[:offset])
	if size == 0 {
		return 0, false
	}
	return r, true
}
