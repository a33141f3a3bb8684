package polydraw

import (
	"errors"
	"fmt"
)

// RuntimeError is returned by host-facing operations (as opposed to the
// debug-only invariant panics raised by checks.go) when a caller-supplied
// value is unusable at the point it's needed: a nil Frame, an empty
// Scene, or similar. Op names the operation that failed.
type RuntimeError struct {
	Op  string
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("polydraw: %s: %v", e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// Sentinel errors wrapped by RuntimeError.
var (
	// ErrNilFrame is returned when Render is called with a nil Frame.
	ErrNilFrame = errors.New("nil frame")

	// ErrNilScene is returned when Render is called with a nil Scene.
	ErrNilScene = errors.New("nil scene")
)
