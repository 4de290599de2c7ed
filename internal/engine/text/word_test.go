package text

import "testing"

func TestWordRangeAt(t *testing.T) {
	//            0123456789012345678
	doc := NewDocument("hello world_2 done")

	tests := []struct {
		name   string
		offset ByteOffset
		want   Range
		ok     bool
	}{
		{"start of word", 0, Range{Start: 0, End: 5}, true},
		{"inside word", 2, Range{Start: 0, End: 5}, true},
		{"end boundary resolves to word", 5, Range{Start: 0, End: 5}, true},
		{"underscore and digit are word chars", 8, Range{Start: 6, End: 13}, true},
		{"caret after word_2", 13, Range{Start: 6, End: 13}, true},
		{"inside last word", 15, Range{Start: 14, End: 18}, true},
		{"end of document", 18, Range{Start: 14, End: 18}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := doc.WordRangeAt(tt.offset)
			if ok != tt.ok || got != tt.want {
				t.Errorf("WordRangeAt(%d) = %v, %v; want %v, %v", tt.offset, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWordRangeAtNoWord(t *testing.T) {
	doc := NewDocument("a  ,. b")

	// Offset 2 is between two spaces; offset 4 is on punctuation
	// preceded by punctuation.
	for _, off := range []ByteOffset{2, 4, 5} {
		if r, ok := doc.WordRangeAt(off); ok {
			t.Errorf("WordRangeAt(%d) = %v, want no word", off, r)
		}
	}
}

func TestWordRangeAtUnicode(t *testing.T) {
	doc := NewDocument("héllo wörld")

	r, ok := doc.WordRangeAt(1)
	if !ok {
		t.Fatal("expected word at offset 1")
	}
	// "héllo" is 6 bytes (é is 2 bytes).
	if want := (Range{Start: 0, End: 6}); r != want {
		t.Errorf("WordRangeAt(1) = %v, want %v", r, want)
	}

	if got := doc.TextRange(r.Start, r.End); got != "héllo" {
		t.Errorf("word text = %q, want %q", got, "héllo")
	}
}

func TestWordRangeAtEmptyDocument(t *testing.T) {
	doc := NewDocument("")
	if r, ok := doc.WordRangeAt(0); ok {
		t.Errorf("WordRangeAt(0) = %v, want no word", r)
	}
}

func TestNextWordStart(t *testing.T) {
	//            0123456789012
	doc := NewDocument("foo bar, baz")

	tests := []struct {
		name   string
		offset ByteOffset
		want   ByteOffset
	}{
		{"from word start", 0, 4},
		{"from inside word", 1, 4},
		{"from separator", 3, 4},
		{"over punctuation", 4, 9},
		{"from last word", 9, 12},
		{"at end", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.NextWordStart(tt.offset); got != tt.want {
				t.Errorf("NextWordStart(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPrevWordStart(t *testing.T) {
	//            0123456789012
	doc := NewDocument("foo bar, baz")

	tests := []struct {
		name   string
		offset ByteOffset
		want   ByteOffset
	}{
		{"from end", 12, 9},
		{"from word start", 9, 4},
		{"from inside word", 6, 4},
		{"over punctuation", 4, 0},
		{"at start", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.PrevWordStart(tt.offset); got != tt.want {
				t.Errorf("PrevWordStart(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestIsWordRange(t *testing.T) {
	doc := NewDocument("world worldly")

	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"exact word", Range{Start: 0, End: 5}, true},
		{"prefix of longer token", Range{Start: 6, End: 11}, false},
		{"whole longer token", Range{Start: 6, End: 13}, true},
		{"partial inside word", Range{Start: 1, End: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.IsWordRange(tt.r); got != tt.want {
				t.Errorf("IsWordRange(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
