package queue

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by checked accessors when the position is outside [0, Len()).
	ErrOutOfRange = errors.New("queue: position out of range")

	// ErrStaleCursor is the panic value raised when a Cursor outlives a reallocation of its queue.
	ErrStaleCursor = errors.New("queue: cursor used after the buffer was reallocated")
)
