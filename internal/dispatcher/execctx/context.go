// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/text"
)

// DocumentInterface is the narrow host capability needed by selection
// commands: text access, coordinate mapping, and word-range lookup.
// Handlers never see a concrete document type, so they stay testable
// without a running editor.
type DocumentInterface interface {
	// Text access
	Text() string
	TextRange(start, end text.ByteOffset) string
	Len() text.ByteOffset
	LineCount() uint32

	// Coordinate conversion
	OffsetToPoint(offset text.ByteOffset) text.Point
	PointToOffset(point text.Point) text.ByteOffset
	LineStartOffset(line uint32) text.ByteOffset
	LineEndOffset(line uint32) text.ByteOffset

	// Word boundaries
	WordRangeAt(offset text.ByteOffset) (text.Range, bool)

	// Snapshot identity
	RevisionID() text.RevisionID
}

// SelectionManagerInterface abstracts the host's selection state.
type SelectionManagerInterface interface {
	Primary() cursor.Selection
	SetPrimary(sel cursor.Selection)
	All() []cursor.Selection
	SetAll(sels []cursor.Selection)
	Add(sel cursor.Selection)
	Clear()
	Count() int
	HasSelection() bool
	Clamp(maxOffset cursor.ByteOffset)
}

// RendererInterface abstracts view operations. It may be nil; handlers
// must treat it as optional.
type RendererInterface interface {
	ScrollTo(line, col uint32)
	Redraw()
}

// ExecutionContext provides context for action execution. It carries
// references to the host subsystems a handler may need.
type ExecutionContext struct {
	// Document is the active document snapshot. Nil when no document
	// is open; handlers treat that as a silent no-op condition.
	Document DocumentInterface

	// Selections is the host's selection state.
	Selections SelectionManagerInterface

	// Renderer provides view operations (optional).
	Renderer RendererInterface

	// Count is the repeat count (1 if not specified).
	Count int

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Count: 1,
		Data:  make(map[string]interface{}),
	}
}

// WithDocument returns the context with the document set.
func (ctx *ExecutionContext) WithDocument(doc DocumentInterface) *ExecutionContext {
	ctx.Document = doc
	return ctx
}

// WithSelections returns the context with the selection manager set.
func (ctx *ExecutionContext) WithSelections(sels SelectionManagerInterface) *ExecutionContext {
	ctx.Selections = sels
	return ctx
}

// WithRenderer returns the context with the renderer set.
func (ctx *ExecutionContext) WithRenderer(r RendererInterface) *ExecutionContext {
	ctx.Renderer = r
	return ctx
}

// WithCount returns the context with the repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// HasSelection returns true if there is an active non-empty selection.
func (ctx *ExecutionContext) HasSelection() bool {
	if ctx.Selections == nil {
		return false
	}
	return ctx.Selections.HasSelection()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the context has the components every selection
// command requires.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Document == nil {
		return ErrMissingDocument
	}
	if ctx.Selections == nil {
		return ErrMissingSelections
	}
	return nil
}
