package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Resolve. They are always wrapped in an *Error;
// use errors.Is to test for them.
var (
	ErrNoAssociation = errors.New("no association")
	ErrNoBinding     = errors.New("no reducer binding")
	ErrAmbiguous     = errors.New("ambiguous association")
	ErrArity         = errors.New("too many elements")
	ErrUnknownTuple  = errors.New("unknown tuple")
	ErrDuplicate     = errors.New("duplicate declaration")
	ErrCycle         = errors.New("cyclic declaration")
)

// Error describes a declaration that cannot be resolved.
type Error struct {
	// Kind holds one of the Err* values above.
	Kind error

	// Decl names the declaration that failed: a tuple, mapper,
	// filter or reducer.
	Decl string

	// Tuple names the tuple the declaration was applied to, if any.
	Tuple string

	// Index holds the index of the offending element, or -1.
	Index int

	// Type holds the offending element type, if any.
	Type string

	// Detail holds extra information about the failure.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Decl)
	if e.Tuple != "" {
		fmt.Fprintf(&b, "(%s)", e.Tuple)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": element %d", e.Index)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}
	fmt.Fprintf(&b, ": %v", e.Kind)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}
