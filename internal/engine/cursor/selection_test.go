package cursor

import "testing"

func TestSelectionBasics(t *testing.T) {
	sel := NewSelection(5, 10)

	if sel.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty selection")
	}
	if got := sel.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := sel.Range(); got != (Range{Start: 5, End: 10}) {
		t.Errorf("Range() = %v", got)
	}
}

func TestSelectionBackward(t *testing.T) {
	sel := NewSelection(10, 5)

	if got := sel.Start(); got != 5 {
		t.Errorf("Start() = %d, want 5", got)
	}
	if got := sel.End(); got != 10 {
		t.Errorf("End() = %d, want 10", got)
	}
	if got := sel.Range(); got != (Range{Start: 5, End: 10}) {
		t.Errorf("Range() = %v", got)
	}
	if got := sel.Normalize(); got != NewSelection(5, 10) {
		t.Errorf("Normalize() = %v", got)
	}
}

func TestCaret(t *testing.T) {
	caret := NewCaret(7)

	if !caret.IsEmpty() {
		t.Error("IsEmpty() = false for caret")
	}
	if got := caret.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestSelectionOps(t *testing.T) {
	sel := NewCaret(3)

	sel = sel.Extend(8)
	if got := sel.Range(); got != (Range{Start: 3, End: 8}) {
		t.Errorf("after Extend: Range() = %v", got)
	}

	collapsed := sel.Collapse()
	if !collapsed.IsEmpty() || collapsed.Head != 8 {
		t.Errorf("Collapse() = %v, want caret at 8", collapsed)
	}

	moved := sel.MoveTo(0)
	if !moved.IsEmpty() || moved.Head != 0 {
		t.Errorf("MoveTo(0) = %v, want caret at 0", moved)
	}
}

func TestSelectionOverlapsAndMerge(t *testing.T) {
	a := NewSelection(0, 5)
	b := NewSelection(3, 8)
	c := NewSelection(5, 9)

	if !a.Overlaps(b) {
		t.Error("a should overlap b")
	}
	if a.Overlaps(c) {
		t.Error("adjacent selections should not overlap")
	}

	merged := a.Merge(b)
	if got := merged.Range(); got != (Range{Start: 0, End: 8}) {
		t.Errorf("Merge = %v", got)
	}
}

func TestSelectionClamp(t *testing.T) {
	sel := NewSelection(-2, 100)
	clamped := sel.Clamp(10)

	if clamped.Anchor != 0 || clamped.Head != 10 {
		t.Errorf("Clamp(10) = %v, want 0-10", clamped)
	}
}

func TestSameRange(t *testing.T) {
	forward := NewSelection(2, 6)
	backward := NewSelection(6, 2)

	if !forward.SameRange(backward) {
		t.Error("SameRange should ignore direction")
	}
	if forward.Equals(backward) {
		t.Error("Equals should respect direction")
	}
}
