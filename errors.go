package deltae

import (
	"fmt"
	"strings"
)

// UnknownMethodError is returned when a requested method name does not
// resolve against the registry. The error lists every valid canonical
// name so the caller can report the full set.
type UnknownMethodError struct {
	Method string
	Valid  []string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown colour-difference method %q, valid methods are: %s",
		e.Method, strings.Join(e.Valid, ", "))
}

// InvalidShapeError is returned when the shape of an input does not
// satisfy a formula's preconditions: a flat component slice whose length
// is not a multiple of three, or two batches that are not
// broadcast-compatible.
type InvalidShapeError struct {
	Reason string
	LenA   int
	LenB   int
}

func (e *InvalidShapeError) Error() string {
	if e.LenB != 0 {
		return fmt.Sprintf("invalid shape: %s (lengths %d and %d)",
			e.Reason, e.LenA, e.LenB)
	}
	return fmt.Sprintf("invalid shape: %s (length %d)", e.Reason, e.LenA)
}
