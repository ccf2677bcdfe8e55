package ordermap

import "errors"

// Sentinel errors returned across the Map and Cursor API. Wrap with
// fmt.Errorf("%w: ...") for extra context; callers should match with
// errors.Is.
var (
	// ErrNullArgument reports a required key, value, or handle that was
	// absent. No operation of this package returns it; it is kept so that
	// errors.Is checks against the full error taxonomy compile.
	ErrNullArgument = errors.New("ordermap: null argument")

	// ErrInvalidConfig is returned when a Policy lacks a required comparator, or
	// declares a Clone hook without its matching Dispose hook (or vice versa).
	ErrInvalidConfig = errors.New("ordermap: invalid policy configuration")

	// ErrOutOfMemory reports an allocation failure while materializing a
	// node, key, or value. No operation of this package returns it; it is
	// kept for the same reason as ErrNullArgument.
	ErrOutOfMemory = errors.New("ordermap: out of memory")

	// ErrKeyNotFound is returned by operations that require an existing key.
	ErrKeyNotFound = errors.New("ordermap: key not found")

	// ErrIteratorInvalid is returned by a Cursor operation once the binding it
	// referenced has been removed from the Map.
	ErrIteratorInvalid = errors.New("ordermap: cursor is invalid")

	// ErrIteratorAtEnd is returned by Cursor.Advance once the cursor has moved
	// past the last binding in its direction.
	ErrIteratorAtEnd = errors.New("ordermap: cursor is past the end")
)
