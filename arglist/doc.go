// Package arglist provides a small, fluent wrapper around the parameter list
// of a variadic call.
//
// # Overview
//
// The central type is [List]. A variadic function captures its incoming
// values, reshapes them through chained calls and forwards the result to
// another function:
//
//	func specialMin(values ...any) any {
//	    v, _ := arglist.New(values...).
//	        Shift().
//	        Pop().
//	        ApplyTo(minOf)
//	    return v
//	}
//
//	specialMin(0, 2, 3, 4, 1) // → 2
//
// # Mutability
//
// Unlike the immutable collections this package is modelled on, a [List] is
// mutated in place: [List.Set], [List.Shift], [List.Pop], [List.Unshift] and
// [List.Push] all modify the receiver and return that same pointer. A List
// has a single owner and performs no locking.
//
// Out-of-range writes and removals on an empty list are silent no-ops.
// Reads outside the list return nil.
//
// # Forwarding
//
// Three terminal operations forward the current items as positional
// arguments:
//
//   - [List.Apply] calls a func(...any) any directly.
//   - [List.ApplyTo] calls any Go function value through reflection, with an
//     optional receiver bound as the first argument (method expressions).
//   - [Forward] calls a typed variadic function such as func(...int) int.
//
// Errors and panics raised by the forwarded function reach the caller
// unchanged.
//
// # Dynamic capture
//
// [Capture] accepts an untyped value and only succeeds for the marker type
// [Args]. Anything else fails with [ErrInvalidArgumentSource].
package arglist
