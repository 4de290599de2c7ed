// Package occurrence finds every occurrence of a literal string in a
// document and turns the matches into selection ranges.
package occurrence

import (
	"strings"

	"github.com/dshills/multisel/internal/engine/text"
)

// Find returns the ordered start offsets of every match of needle in
// haystack, scanning left to right. After a match at offset i the scan
// resumes at i+1, not past the match end, so matches that overlap by up
// to len(needle)-1 bytes are all reported:
//
//	Find("aaa", "aa") == [0, 1]
//
// Matching is case-sensitive and literal. An empty needle returns nil;
// callers must not treat that as "matches everywhere".
func Find(haystack, needle string) []text.ByteOffset {
	if needle == "" {
		return nil
	}

	var offsets []text.ByteOffset
	base := 0
	for {
		i := strings.Index(haystack[base:], needle)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, text.ByteOffset(base+i))
		base += i + 1
	}
}
