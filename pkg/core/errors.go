package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the preparer, the builder and the
// token stream matches exactly one of these through errors.Is.
var (
	// ErrInvalidArgument reports a value of the wrong shape or type.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidEnumerationMember reports a token outside its dialect's allowed set.
	ErrInvalidEnumerationMember = errors.New("invalid enumeration member")
	// ErrBuildOrder reports a clause requested out of its required order.
	ErrBuildOrder = errors.New("sql build order")
	// ErrOutOfBounds reports a cursor seek beyond the valid index range.
	ErrOutOfBounds = errors.New("out of bounds")
)

// InvalidArgumentError is returned when a preparation routine receives a
// value it cannot render.
type InvalidArgumentError struct {
	Op      string // operation that rejected the value, e.g. "identifier"
	Value   any
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: unsupported value of type %T", ErrInvalidArgument, e.Op, e.Value)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// EnumerationError is returned when an enumerated token is not a member of
// the dialect's allowed set.
type EnumerationError struct {
	Group   string // COMPARISON, SET, JOIN, CONNECTOR, PARENTHESIS
	Value   string
	Dialect string
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("%s: %q is not a %s token in %s dialect", ErrInvalidEnumerationMember, e.Value, e.Group, e.Dialect)
}

// Unwrap returns ErrInvalidEnumerationMember.
func (e *EnumerationError) Unwrap() error { return ErrInvalidEnumerationMember }

// BuildOrderError is returned when a builder clause is requested out of order.
type BuildOrderError struct {
	Clause  string
	Message string
}

func (e *BuildOrderError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrBuildOrder, e.Clause, e.Message)
}

// Unwrap returns ErrBuildOrder.
func (e *BuildOrderError) Unwrap() error { return ErrBuildOrder }

// OutOfBoundsError is returned by cursors when an index is outside [0, Len).
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: index %d not in range [0, %d)", ErrOutOfBounds, e.Index, e.Len)
}

// Unwrap returns ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
