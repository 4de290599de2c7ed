package dispatcher

import (
	"strings"
	"sync"

	"github.com/dshills/multisel/internal/dispatcher/handler"
)

// Router routes actions to handlers using namespace prefixes.
// It provides O(1) lookup for namespaced actions like
// "selection.selectOccurrences".
type Router struct {
	mu sync.RWMutex

	// Namespace handlers (e.g., "selection" handles "selection.*")
	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in a namespace.
// The namespace is the prefix before the first dot.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// Route finds the namespace handler for an action.
// Returns nil if no handler is found.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	namespace := extractNamespace(actionName)
	if namespace == "" {
		return nil
	}
	h, ok := r.namespaces[namespace]
	if !ok || !h.CanHandle(actionName) {
		return nil
	}
	return handler.NewNamespaceAdapter(h)
}

// HasNamespace returns true if a handler is registered for the namespace.
func (r *Router) HasNamespace(namespace string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.namespaces[namespace]
	return ok
}

// extractNamespace returns the prefix before the first dot, or "" when
// the action name has no namespace.
func extractNamespace(actionName string) string {
	if i := strings.IndexByte(actionName, '.'); i > 0 {
		return actionName[:i]
	}
	return ""
}
