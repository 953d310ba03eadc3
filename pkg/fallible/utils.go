package fallible

import (
	"reflect"
	"runtime/debug"
)

// IsNil reports whether i is nil, including typed nil pointers, maps,
// slices, funcs, channels and interfaces.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Failed reports whether err signals a failure. The zero value of E is
// success: a nil interface, a typed nil pointer such as (*fs.PathError)(nil),
// or a zero value-kind error such as syscall.Errno(0).
func Failed[E error](err E) bool {
	if IsNil(err) {
		return false
	}
	return !reflect.ValueOf(err).IsZero()
}

// Catch runs fn and returns the error value of a panic raised by it, or
// nil when fn returns normally. Panics with a non-error value are
// re-raised.
func Catch(fn func()) (err error) {
	RequireNonNil(fn, "fn")

	defer func() {
		if r := recover(); r != nil {
			err = mustError(r)
		}
	}()

	fn()
	return nil
}

// mustError returns a recovered panic value as an error or panics again
// with it unchanged.
func mustError(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	return err
}

// asError returns a recovered panic value as an error, wrapping a non-error
// value in a *PanicError.
func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}
