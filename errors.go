package sqlq

import (
	"errors"
	"fmt"
)

// ErrNoActiveChain is returned when a chain is mutated, compiled or
// executed after it was consumed (or never started).
var ErrNoActiveChain = errors.New("no active chain: bind a table first")

// ErrInvalidCallback is returned by Each when the row callback is nil.
var ErrInvalidCallback = errors.New("row callback must not be nil")

// errNoHandle is returned when a detached builder reaches a terminal call.
var errNoHandle = errors.New("builder has no database handle")

// QueryError wraps a chain failure with the operation and table it
// happened on. Use errors.Is to test for the sentinel underneath.
type QueryError struct {
	Op, Table  string
	Underlying error
}

func (e *QueryError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("sqlq: %s: %v", e.Op, e.Underlying)
	}
	return fmt.Sprintf("sqlq: %s %s: %v", e.Op, e.Table, e.Underlying)
}

func (e *QueryError) Unwrap() error {
	return e.Underlying
}
