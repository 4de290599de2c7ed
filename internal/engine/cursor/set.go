package cursor

import "sort"

// SelectionSet manages the editor's active selections.
// Selections are kept sorted by position and non-overlapping.
// The first selection is the "primary" selection.
type SelectionSet struct {
	selections []Selection
}

// NewSelectionSet creates a selection set with a single selection.
func NewSelectionSet(initial Selection) *SelectionSet {
	return &SelectionSet{selections: []Selection{initial}}
}

// NewSelectionSetAt creates a selection set with a single caret at the
// given offset.
func NewSelectionSetAt(offset ByteOffset) *SelectionSet {
	return &SelectionSet{selections: []Selection{NewCaret(offset)}}
}

// Primary returns the primary (first) selection.
func (ss *SelectionSet) Primary() Selection {
	if len(ss.selections) == 0 {
		return Selection{}
	}
	return ss.selections[0]
}

// SetPrimary sets the primary selection, keeping the others.
func (ss *SelectionSet) SetPrimary(sel Selection) {
	if len(ss.selections) == 0 {
		ss.selections = []Selection{sel}
	} else {
		ss.selections[0] = sel
	}
	ss.normalize()
}

// All returns a copy of all selections, sorted by position.
func (ss *SelectionSet) All() []Selection {
	result := make([]Selection, len(ss.selections))
	copy(result, ss.selections)
	return result
}

// SetAll replaces all selections. An empty slice resets to a caret at
// offset 0.
func (ss *SelectionSet) SetAll(sels []Selection) {
	if len(sels) == 0 {
		ss.selections = []Selection{NewCaret(0)}
		return
	}
	ss.selections = make([]Selection, len(sels))
	copy(ss.selections, sels)
	ss.normalize()
}

// Add adds a new selection, merging with overlapping ones.
func (ss *SelectionSet) Add(sel Selection) {
	ss.selections = append(ss.selections, sel)
	ss.normalize()
}

// Clear removes all selections except the primary.
func (ss *SelectionSet) Clear() {
	if len(ss.selections) > 1 {
		ss.selections = ss.selections[:1]
	}
}

// Count returns the number of selections.
func (ss *SelectionSet) Count() int {
	return len(ss.selections)
}

// IsMulti returns true if there are multiple selections.
func (ss *SelectionSet) IsMulti() bool {
	return len(ss.selections) > 1
}

// HasSelection returns true if any selection is non-empty (has extent).
func (ss *SelectionSet) HasSelection() bool {
	for _, sel := range ss.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// Ranges returns all selection ranges.
func (ss *SelectionSet) Ranges() []Range {
	ranges := make([]Range, len(ss.selections))
	for i, sel := range ss.selections {
		ranges[i] = sel.Range()
	}
	return ranges
}

// Clamp clamps all selections to the valid range [0, maxOffset].
func (ss *SelectionSet) Clamp(maxOffset ByteOffset) {
	for i, sel := range ss.selections {
		ss.selections[i] = sel.Clamp(maxOffset)
	}
	ss.normalize()
}

// Clone returns a deep copy of the selection set.
func (ss *SelectionSet) Clone() *SelectionSet {
	clone := &SelectionSet{selections: make([]Selection, len(ss.selections))}
	copy(clone.selections, ss.selections)
	return clone
}

// normalize sorts selections and merges overlapping ones.
func (ss *SelectionSet) normalize() {
	if len(ss.selections) <= 1 {
		return
	}

	sort.Slice(ss.selections, func(i, j int) bool {
		si, sj := ss.selections[i].Start(), ss.selections[j].Start()
		if si != sj {
			return si < sj
		}
		// Same start: larger ranges first.
		return ss.selections[i].End() > ss.selections[j].End()
	})

	merged := ss.selections[:1]
	for _, sel := range ss.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Overlaps(*last) {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	ss.selections = merged
}

// Equals returns true if two selection sets hold the same selections.
func (ss *SelectionSet) Equals(other *SelectionSet) bool {
	if other == nil || len(ss.selections) != len(other.selections) {
		return false
	}
	for i, sel := range ss.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}
