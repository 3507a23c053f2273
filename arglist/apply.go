package arglist

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Apply calls fn with the current items as positional arguments and returns
// its result. The list is not modified.
func (l *List) Apply(fn func(...any) any) any {
	return fn(l.ToSlice()...)
}

// ApplyTo calls fn, which may be any function value, with the current items
// as positional arguments.
//
// When a receiver is given it is bound as the first argument, which is how a
// method expression receives its receiver:
//
//	list.ApplyTo((*Counter).Add, counter)
//
// Without a receiver, or with an untyped nil one, nothing is bound. At most
// one receiver may be passed.
//
// A trailing error result of fn is returned as-is in the error position.
// The remaining results become nil (none), the value itself (one), or an
// []any (several). Panics raised by fn are not recovered.
//
// ApplyTo fails with [ErrNotCallable] or [ErrArgumentMismatch] before fn is
// called when the items cannot be passed to it.
func (l *List) ApplyTo(fn any, receiver ...any) (any, error) {
	if len(receiver) > 1 {
		return nil, errors.Wrapf(ErrArgumentMismatch, "at most one receiver, got %d", len(receiver))
	}

	fv := reflect.ValueOf(fn)
	if fn == nil || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, errors.Wrapf(ErrNotCallable, "%T", fn)
	}

	args := l.items
	if len(receiver) == 1 && receiver[0] != nil {
		args = make([]any, 0, len(l.items)+1)
		args = append(args, receiver[0])
		args = append(args, l.items...)
	}

	in, err := callArgs(fv.Type(), args)
	if err != nil {
		return nil, err
	}
	return unpackResults(fv.Type(), fv.Call(in))
}

// Forward calls the typed variadic fn with the items of l. Every item must
// already be a T; no conversion is attempted.
//
//	sum, err := arglist.Forward(list, func(ns ...int) int {
//	    total := 0
//	    for _, n := range ns {
//	        total += n
//	    }
//	    return total
//	})
func Forward[T, R any](l *List, fn func(...T) R) (R, error) {
	var zero R
	want := reflect.TypeOf((*T)(nil)).Elem()
	typed := make([]T, len(l.items))
	for i, item := range l.items {
		if item == nil {
			if !nilable(want) {
				return zero, errors.Wrapf(ErrArgumentMismatch, "argument %d: nil is not assignable to %s", i, want)
			}
			continue
		}
		v, ok := item.(T)
		if !ok {
			return zero, errors.Wrapf(ErrArgumentMismatch, "argument %d: %T is not assignable to %s", i, item, want)
		}
		typed[i] = v
	}
	return fn(typed...), nil
}

// callArgs checks args against the parameters of ft and converts them to
// reflect values.
func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, errors.Wrapf(ErrArgumentMismatch, "want at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, errors.Wrapf(ErrArgumentMismatch, "want %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		if arg == nil {
			if !nilable(pt) {
				return nil, errors.Wrapf(ErrArgumentMismatch, "argument %d: nil is not assignable to %s", i, pt)
			}
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, errors.Wrapf(ErrArgumentMismatch, "argument %d: %s is not assignable to %s", i, v.Type(), pt)
		}
		in[i] = v
	}
	return in, nil
}

// paramType returns the type the i-th argument is passed as, expanding the
// variadic tail to its element type.
func paramType(ft reflect.Type, i int) reflect.Type {
	last := ft.NumIn() - 1
	if ft.IsVariadic() && i >= last {
		return ft.In(last).Elem()
	}
	return ft.In(i)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func unpackResults(ft reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if e, ok := out[n-1].Interface().(error); ok {
			err = e
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}
