package internal

import "errors"

// Structural errors raised synchronously to the host. These are checked
// with errors.Is, never compared directly, since formula parsing wraps
// ErrFormulaParse with more specific context.
var (
	ErrInvalidPosition    = errors.New("invalid cell position")
	ErrFormulaParse       = errors.New("formula parse error")
	ErrCircularDependency = errors.New("circular dependency detected")
)
