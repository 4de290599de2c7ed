package selection

import (
	"fmt"

	"github.com/dshills/multisel/internal/dispatcher/execctx"
	"github.com/dshills/multisel/internal/dispatcher/handler"
	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/text"
	"github.com/dshills/multisel/internal/input"
	"github.com/dshills/multisel/internal/occurrence"
)

// Action names for selection operations.
const (
	ActionSelectOccurrences    = "selection.selectOccurrences"    // select all other occurrences
	ActionSelectNextOccurrence = "selection.selectNextOccurrence" // add next occurrence
	ActionClear                = "selection.clear"                // collapse to primary
)

// Handler implements namespace-based selection handling.
type Handler struct{}

// NewHandler creates a new selection handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the selection namespace.
func (h *Handler) Namespace() string {
	return "selection"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionSelectOccurrences, ActionSelectNextOccurrence, ActionClear:
		return true
	}
	return false
}

// HandleAction processes a selection action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionSelectOccurrences:
		return h.selectOccurrences(ctx)
	case ActionSelectNextOccurrence:
		return h.selectNextOccurrence(ctx)
	case ActionClear:
		return h.clear(ctx)
	default:
		return handler.Errorf("unknown selection action: %s", action.Name)
	}
}

// seed determines the search text for an occurrence command. A
// non-empty primary selection seeds a literal search; a bare caret
// seeds a whole-word search on the word under it. ok is false when
// there is nothing to search for, which callers treat as a silent
// no-op. Nothing is mutated here.
func (h *Handler) seed(ctx *execctx.ExecutionContext) (rng text.Range, wholeWord, ok bool) {
	primary := ctx.Selections.Primary()
	if !primary.IsEmpty() {
		return primary.Range(), false, true
	}

	wordRange, found := ctx.Document.WordRangeAt(primary.Head)
	if !found {
		return text.Range{}, false, false
	}
	return wordRange, true, true
}

// selectOccurrences replaces the selection set with every other
// occurrence of the seed text in the document.
func (h *Handler) selectOccurrences(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Document == nil || ctx.Selections == nil {
		return handler.NoOp()
	}

	seedRange, wholeWord, ok := h.seed(ctx)
	if !ok {
		return handler.NoOpWithMessage("select occurrences: no word under caret")
	}

	doc := ctx.Document
	seedText := doc.TextRange(seedRange.Start, seedRange.End)
	if seedText == "" {
		return handler.NoOp()
	}

	offsets := occurrence.Find(doc.Text(), seedText)

	// The seed range is itself an occurrence; drop exactly one entry at
	// its start offset. Absence would mean the selection and the
	// document snapshot disagree, so bail out without touching state.
	offsets, found := removeOffset(offsets, seedRange.Start)
	if !found {
		return handler.NoOpWithMessage("select occurrences: selection out of sync with document")
	}

	ranges := occurrence.Ranges(offsets, len(seedText))
	if wholeWord {
		ranges = filterWordRanges(doc, ranges)
	}

	if len(ranges) == 0 {
		return handler.Success().WithMessage("select occurrences: no other occurrences")
	}

	sels := make([]cursor.Selection, len(ranges))
	for i, r := range ranges {
		sels[i] = cursor.NewRangeSelection(r)
	}
	ctx.Selections.SetAll(sels)

	point := doc.OffsetToPoint(ranges[0].Start)
	return handler.Success().
		WithMessage(fmt.Sprintf("selected %d occurrence(s)", len(ranges))).
		WithScrollTo(point.Line, point.Column, false).
		WithData("occurrences", len(ranges))
}

// selectNextOccurrence adds the next occurrence after the last
// selection to the selection set, wrapping past the end of the
// document.
func (h *Handler) selectNextOccurrence(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Document == nil || ctx.Selections == nil {
		return handler.NoOp()
	}

	seedRange, wholeWord, ok := h.seed(ctx)
	if !ok {
		return handler.NoOpWithMessage("select next: no word under caret")
	}

	doc := ctx.Document
	seedText := doc.TextRange(seedRange.Start, seedRange.End)
	if seedText == "" {
		return handler.NoOp()
	}

	// A caret-seeded command first selects the word itself.
	if !ctx.Selections.HasSelection() {
		ctx.Selections.SetPrimary(cursor.NewRangeSelection(seedRange))
		point := doc.OffsetToPoint(seedRange.Start)
		return handler.Success().
			WithMessage("selected: " + seedText).
			WithScrollTo(point.Line, point.Column, false)
	}

	ranges := occurrence.Ranges(occurrence.Find(doc.Text(), seedText), len(seedText))
	if wholeWord {
		ranges = filterWordRanges(doc, ranges)
	}

	next, found := nextUnselected(ranges, ctx.Selections.All(), lastEnd(ctx.Selections.All()))
	if !found {
		return handler.NoOpWithMessage("select next: no more occurrences")
	}

	ctx.Selections.Add(cursor.NewRangeSelection(next))
	point := doc.OffsetToPoint(next.Start)
	return handler.Success().
		WithMessage(fmt.Sprintf("%d selected", ctx.Selections.Count())).
		WithScrollTo(point.Line, point.Column, true)
}

// clear collapses the selection set to the primary selection.
func (h *Handler) clear(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Selections == nil {
		return handler.NoOp()
	}
	ctx.Selections.Clear()
	return handler.Success().WithMessage("selection cleared")
}

// removeOffset removes the first entry equal to target, preserving
// order. found is false when target is absent.
func removeOffset(offsets []text.ByteOffset, target text.ByteOffset) ([]text.ByteOffset, bool) {
	for i, off := range offsets {
		if off == target {
			return append(offsets[:i:i], offsets[i+1:]...), true
		}
	}
	return offsets, false
}

// filterWordRanges keeps only ranges that exactly cover a word under
// the document's word-boundary rules. Matches that are sub- or
// super-strings of a longer token are dropped.
func filterWordRanges(doc execctx.DocumentInterface, ranges []text.Range) []text.Range {
	filtered := ranges[:0]
	for _, r := range ranges {
		wr, ok := doc.WordRangeAt(r.Start)
		if ok && wr == r {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// lastEnd returns the end offset of the last selection in the set.
func lastEnd(sels []cursor.Selection) text.ByteOffset {
	if len(sels) == 0 {
		return 0
	}
	return sels[len(sels)-1].End()
}

// nextUnselected returns the first range starting at or after from that
// is not already covered by an existing selection, wrapping to the
// start of the document.
func nextUnselected(ranges []text.Range, sels []cursor.Selection, from text.ByteOffset) (text.Range, bool) {
	covered := func(r text.Range) bool {
		candidate := cursor.NewRangeSelection(r)
		for _, sel := range sels {
			if sel.SameRange(candidate) || sel.Overlaps(candidate) {
				return true
			}
		}
		return false
	}

	// Forward from the last selection, then wrap.
	for _, r := range ranges {
		if r.Start >= from && !covered(r) {
			return r, true
		}
	}
	for _, r := range ranges {
		if !covered(r) {
			return r, true
		}
	}
	return text.Range{}, false
}
