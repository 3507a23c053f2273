package arglist

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Args marks a slice as the captured parameter list of a variadic call.
//
// A variadic callee converts its own parameter to Args before handing it to
// [Capture]:
//
//	func handler(values ...any) {
//	    list, err := arglist.Capture(arglist.Args(values))
//	    ...
//	}
type Args []any

// List is a mutable, ordered wrapper around a captured parameter list.
//
// Mutators change the list in place and return the same *List so calls can be
// chained:
//
//	list := arglist.New(1, 2, 3, 4).
//	    Shift().
//	    Pop().
//	    Unshift("one").
//	    Push("four") // ["one", 2, 3, "four"]
//
// The zero value is an empty list ready to use. A List must not be mutated
// from several goroutines at once.
type List struct {
	items []any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of values (copied).
func New(values ...any) *List {
	dst := make([]any, len(values))
	copy(dst, values)
	return &List{items: dst}
}

// Of creates a List from a typed variadic list, boxing every value.
func Of[T any](values ...T) *List {
	dst := make([]any, len(values))
	for i, v := range values {
		dst[i] = v
	}
	return &List{items: dst}
}

// Capture creates a List from source, which must be an [Args] value or a
// non-nil *Args. Any other value, including a plain []any, yields
// [ErrInvalidArgumentSource].
func Capture(source any) (*List, error) {
	switch s := source.(type) {
	case Args:
		return New(s...), nil
	case *Args:
		if s != nil {
			return New(*s...), nil
		}
	}
	return nil, ErrInvalidArgumentSource
}

// MustCapture is like [Capture] but panics on error.
func MustCapture(source any) *List {
	l, err := Capture(source)
	if err != nil {
		panic(err)
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the current items.
func (l *List) ToSlice() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// All is an alias for [List.ToSlice].
func (l *List) All() []any { return l.ToSlice() }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// IsEmpty reports whether the list holds no items.
func (l *List) IsEmpty() bool { return len(l.items) == 0 }

// Has reports whether n is a valid position in the list.
func (l *List) Has(n int) bool {
	return n >= 0 && n < len(l.items)
}

// Get returns the item at position n, or nil when n is out of range.
func (l *List) Get(n int) any {
	if !l.Has(n) {
		return nil
	}
	return l.items[n]
}

// ToJSON serialises the items to a JSON array.
func (l *List) ToJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// LogValue implements [slog.LogValuer].
func (l *List) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", len(l.items)),
		slog.Any("items", l.ToSlice()),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Set replaces the item at position n with value. Out-of-range positions are
// ignored.
func (l *List) Set(n int, value any) *List {
	if l.Has(n) {
		l.items[n] = value
	}
	return l
}

// Shift removes the first item, if any.
func (l *List) Shift() *List {
	if len(l.items) > 0 {
		l.items[0] = nil
		l.items = l.items[1:]
	}
	return l
}

// Pop removes the last item, if any.
func (l *List) Pop() *List {
	if n := len(l.items); n > 0 {
		l.items[n-1] = nil
		l.items = l.items[:n-1]
	}
	return l
}

// Unshift inserts values at the front, keeping their order: after
// Unshift(a, b) the list starts with a, b.
func (l *List) Unshift(values ...any) *List {
	if len(values) == 0 {
		return l
	}
	out := make([]any, len(values)+len(l.items))
	copy(out, values)
	copy(out[len(values):], l.items)
	l.items = out
	return l
}

// Push appends values in order.
func (l *List) Push(values ...any) *List {
	l.items = append(l.items, values...)
	return l
}

// Tap calls fn(l) for side-effects (e.g. logging or assertions) and returns
// l for further chaining.
func (l *List) Tap(fn func(*List)) *List {
	fn(l)
	return l
}

// Dump prints the list to stdout and returns l for chaining.
func (l *List) Dump() *List {
	fmt.Println(l.String())
	return l
}
