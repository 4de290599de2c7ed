package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingDocument indicates a document is required but not set.
	ErrMissingDocument = errors.New("execution context: document is required")

	// ErrMissingSelections indicates selection state is required but not set.
	ErrMissingSelections = errors.New("execution context: selections are required")
)
