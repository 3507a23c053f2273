package arglist

import "github.com/cockroachdb/errors"

// Sentinel errors returned by List operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := list.ApplyTo(fn)
//	if errors.Is(err, arglist.ErrArgumentMismatch) {
//	    // fn does not accept the current items
//	}
var (
	// ErrInvalidArgumentSource is returned by [Capture] when the source is
	// not an [Args] value.
	ErrInvalidArgumentSource = errors.New("Parameter is no arguments object")

	// ErrNotCallable is returned by [List.ApplyTo] when fn is nil or not a
	// function.
	ErrNotCallable = errors.New("arglist: value is not callable")

	// ErrArgumentMismatch is returned when the items do not fit the
	// signature of the function they are forwarded to.
	ErrArgumentMismatch = errors.New("arglist: arguments do not match function signature")
)
