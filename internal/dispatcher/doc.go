// Package dispatcher routes actions to handlers and coordinates
// execution.
//
// Actions are resolved in two steps: exact-name handlers registered in
// the Registry are checked first, then namespace handlers in the Router
// (the namespace is the prefix before the first dot of the action
// name). Dispatch is synchronous and serialized; a handler runs to
// completion against one execution context built from the registered
// host subsystems.
package dispatcher
