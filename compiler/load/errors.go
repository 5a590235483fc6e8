package load

import (
	"errors"
	"fmt"
)

// Sentinel errors for document resolution.
var (
	// ErrUnknownName indicates an association referring to a name not
	// declared in the document.
	ErrUnknownName = errors.New("load: unknown name")
	// ErrAmbiguousName indicates a name declared more than once in the
	// document.
	ErrAmbiguousName = errors.New("load: ambiguous name")
)

// UnknownNameError reports an association that refers to an undeclared
// actor or use case.
type UnknownNameError struct {
	Kind string // "actor" or "use case"
	Name string
}

// Error returns the error string.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("load: association refers to unknown %s %q", e.Kind, e.Name)
}

// Is reports whether the target matches ErrUnknownName.
func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

// AmbiguousNameError reports a name declared more than once. Documents
// refer to actors and use cases by name, so names must be unique even
// though the diagram model itself allows duplicates.
type AmbiguousNameError struct {
	Kind string // "actor" or "use case"
	Name string
}

// Error returns the error string.
func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("load: %s %q declared more than once", e.Kind, e.Name)
}

// Is reports whether the target matches ErrAmbiguousName.
func (e *AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguousName
}
