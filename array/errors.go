package array

import "errors"

// Sentinel errors returned by Array operations.
//
// Use [errors.Is] for comparisons:
//
//	if _, err := a.TrimRight(-1); errors.Is(err, array.ErrInvalidArgument) {
//	    // n was negative
//	}
var (
	// ErrInvalidArgument is returned when a count is negative, a required
	// container is nil, or a required needle is missing. The receiver is left
	// unmodified.
	ErrInvalidArgument = errors.New("array: invalid argument")

	// ErrEmptyCollection is returned by Min and Max when the container holds
	// no occupied slot.
	ErrEmptyCollection = errors.New("array: operation on empty collection")

	// ErrInvalidPattern is returned when a regular-expression needle cannot
	// be compiled or evaluated.
	ErrInvalidPattern = errors.New("array: invalid pattern")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("array: macro not found")
)
