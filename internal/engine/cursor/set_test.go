package cursor

import (
	"reflect"
	"testing"
)

func TestSelectionSetPrimary(t *testing.T) {
	ss := NewSelectionSetAt(5)

	if got := ss.Primary(); got != NewCaret(5) {
		t.Errorf("Primary() = %v, want caret at 5", got)
	}
	if ss.Count() != 1 {
		t.Errorf("Count() = %d, want 1", ss.Count())
	}
	if ss.HasSelection() {
		t.Error("HasSelection() = true for lone caret")
	}
}

func TestSelectionSetSetAllSortsByPosition(t *testing.T) {
	ss := NewSelectionSetAt(0)
	ss.SetAll([]Selection{
		NewSelection(20, 25),
		NewSelection(0, 5),
		NewSelection(10, 15),
	})

	want := []Selection{
		NewSelection(0, 5),
		NewSelection(10, 15),
		NewSelection(20, 25),
	}
	if got := ss.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if !ss.IsMulti() {
		t.Error("IsMulti() = false")
	}
}

func TestSelectionSetMergesOverlapping(t *testing.T) {
	ss := NewSelectionSetAt(0)
	ss.SetAll([]Selection{
		NewSelection(0, 6),
		NewSelection(4, 10),
	})

	if ss.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after merge", ss.Count())
	}
	if got := ss.Primary().Range(); got != (Range{Start: 0, End: 10}) {
		t.Errorf("merged range = %v", got)
	}
}

func TestSelectionSetKeepsAdjacentSeparate(t *testing.T) {
	// Touching but non-overlapping occurrence matches stay distinct.
	ss := NewSelectionSetAt(0)
	ss.SetAll([]Selection{
		NewSelection(0, 2),
		NewSelection(2, 4),
	})

	if ss.Count() != 2 {
		t.Errorf("Count() = %d, want 2", ss.Count())
	}
}

func TestSelectionSetAddAndClear(t *testing.T) {
	ss := NewSelectionSet(NewSelection(0, 3))
	ss.Add(NewSelection(10, 13))
	ss.Add(NewSelection(20, 23))

	if ss.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", ss.Count())
	}

	ss.Clear()
	if ss.Count() != 1 {
		t.Errorf("Count() after Clear = %d, want 1", ss.Count())
	}
	if got := ss.Primary(); got != NewSelection(0, 3) {
		t.Errorf("Primary() after Clear = %v", got)
	}
}

func TestSelectionSetSetAllEmptyResetsToCaret(t *testing.T) {
	ss := NewSelectionSet(NewSelection(4, 9))
	ss.SetAll(nil)

	if ss.Count() != 1 || !ss.Primary().IsEmpty() {
		t.Errorf("SetAll(nil) left %v", ss.All())
	}
}

func TestSelectionSetClamp(t *testing.T) {
	ss := NewSelectionSet(NewSelection(5, 50))
	ss.Clamp(10)

	if got := ss.Primary(); got != NewSelection(5, 10) {
		t.Errorf("after Clamp(10): %v", got)
	}
}

func TestSelectionSetClone(t *testing.T) {
	ss := NewSelectionSet(NewSelection(1, 4))
	clone := ss.Clone()
	clone.Add(NewSelection(10, 12))

	if ss.Count() != 1 {
		t.Error("mutating clone affected original")
	}
	if !ss.Equals(ss.Clone()) {
		t.Error("Equals() = false for identical sets")
	}
}
