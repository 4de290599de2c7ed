// Package dispatcher routes actions to handlers and coordinates
// execution.
package dispatcher

import (
	"sync"

	"github.com/dshills/multisel/internal/dispatcher/execctx"
	"github.com/dshills/multisel/internal/dispatcher/handler"
	"github.com/dshills/multisel/internal/input"
)

// Dispatcher routes actions to handlers and executes them against the
// registered host subsystems. Dispatch is synchronous: the host
// guarantees serialized command dispatch, so one action runs to
// completion before the next starts.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router

	document   execctx.DocumentInterface
	selections execctx.SelectionManagerInterface
	renderer   execctx.RendererInterface
}

// New creates a new dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
	}
}

// SetDocument sets the active document snapshot. Pass nil when no
// document is open; actions then resolve as silent no-ops.
func (d *Dispatcher) SetDocument(doc execctx.DocumentInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.document = doc
}

// SetSelections sets the selection manager.
func (d *Dispatcher) SetSelections(sels execctx.SelectionManagerInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selections = sels
}

// SetRenderer sets the renderer.
func (d *Dispatcher) SetRenderer(r execctx.RendererInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderer = r
}

// Register adds a handler for an exact action name.
func (d *Dispatcher) Register(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterNamespace registers a handler for a whole namespace.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h.Namespace(), h)
}

// Dispatch executes a single action and returns its result. Exact-name
// handlers take precedence over namespace handlers.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	h := d.registry.Get(action.Name)
	if h == nil {
		h = d.router.Route(action.Name)
	}
	if h == nil {
		return handler.NoOpWithMessage("no handler for action: " + action.Name)
	}

	ctx := d.buildContext(action)
	return h.Handle(action, ctx)
}

// buildContext assembles the execution context for one action.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return execctx.New().
		WithDocument(d.document).
		WithSelections(d.selections).
		WithRenderer(d.renderer).
		WithCount(action.Count)
}
