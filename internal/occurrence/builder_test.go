package occurrence

import (
	"reflect"
	"testing"

	"github.com/dshills/multisel/internal/engine/text"
)

func TestRanges(t *testing.T) {
	offsets := []text.ByteOffset{0, 17}
	got := Ranges(offsets, 2)

	want := []text.Range{
		{Start: 0, End: 2},
		{Start: 17, End: 19},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ranges(%v, 2) = %v, want %v", offsets, got, want)
	}
}

func TestRangesPreservesOrderAndDuplicates(t *testing.T) {
	offsets := []text.ByteOffset{5, 1, 5}
	got := Ranges(offsets, 3)

	want := []text.Range{
		{Start: 5, End: 8},
		{Start: 1, End: 4},
		{Start: 5, End: 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ranges(%v, 3) = %v, want %v", offsets, got, want)
	}
}

func TestRangesEmpty(t *testing.T) {
	if got := Ranges(nil, 2); len(got) != 0 {
		t.Errorf("Ranges(nil, 2) = %v, want empty", got)
	}
}

func TestPositionRanges(t *testing.T) {
	doc := text.NewDocument("hello world from here")

	got := PositionRanges(doc, []text.ByteOffset{0, 17}, 2)

	want := []text.PositionRange{
		{Start: text.Point{Line: 0, Column: 0}, End: text.Point{Line: 0, Column: 2}},
		{Start: text.Point{Line: 0, Column: 17}, End: text.Point{Line: 0, Column: 19}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PositionRanges = %v, want %v", got, want)
	}
}

func TestPositionRangesMultiline(t *testing.T) {
	doc := text.NewDocument("foo\nbar foo\nfoo")

	offsets := Find(doc.Text(), "foo")
	got := PositionRanges(doc, offsets, 3)

	want := []text.PositionRange{
		{Start: text.Point{Line: 0, Column: 0}, End: text.Point{Line: 0, Column: 3}},
		{Start: text.Point{Line: 1, Column: 4}, End: text.Point{Line: 1, Column: 7}},
		{Start: text.Point{Line: 2, Column: 0}, End: text.Point{Line: 2, Column: 3}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PositionRanges = %v, want %v", got, want)
	}
}
