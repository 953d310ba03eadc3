// Package function adapts single-argument functions that may fail with a
// declared error of type E.
//
// - Lift: absorb the failure into an empty Optional
// - Unchecked: panic with a *fallible.WrappedError around the failure
// - Sneaky: panic with the original failure
// - Try: keep the outcome as a fallible.Result
// - Compose/AndThen: build pipelines that keep E and stop at the first failure
package function

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

// Function is a function of one argument that may fail with E.
type Function[T, R any, E error] func(arg T) (R, E)

// Identity returns a Function that returns its argument and never fails.
func Identity[T any, E error]() Function[T, T, E] {
	return func(arg T) (T, E) {
		var ok E
		return arg, ok
	}
}

// Lift returns a function reporting f's result as an Optional. Failures
// of f, returned or panicked as errors, yield an empty Optional. It
// panics if f is nil.
func Lift[T, R any, E error](f Function[T, R, E]) func(T) fallible.Optional[R] {
	fallible.RequireNonNil(f, "f")
	return func(arg T) fallible.Optional[R] {
		return fallible.LiftCall(func() (R, E) { return f(arg) })
	}
}

// Unchecked returns a function that panics with a *fallible.WrappedError
// when f fails. It panics if f is nil.
func Unchecked[T, R any, E error](f Function[T, R, E]) func(T) R {
	fallible.RequireNonNil(f, "f")
	return func(arg T) R {
		return fallible.UncheckedCall(func() (R, E) { return f(arg) })
	}
}

// Sneaky returns a function that panics with f's error value itself when
// f fails. The returned signature no longer declares E, so the compiler
// will not make callers handle it. It panics if f is nil.
func Sneaky[T, R any, E error](f Function[T, R, E]) func(T) R {
	fallible.RequireNonNil(f, "f")
	return func(arg T) R {
		return fallible.SneakyCall(func() (R, E) { return f(arg) })
	}
}

// Try returns a function reporting f's outcome as a fallible.Result.
func Try[T, R any, E error](f Function[T, R, E]) func(T) fallible.Result[R] {
	fallible.RequireNonNil(f, "f")
	return func(arg T) fallible.Result[R] {
		return fallible.TryCall(func() (R, E) { return f(arg) })
	}
}

// Compose returns a Function that applies before and then f. A failure
// of before is returned unchanged and f is not called.
func Compose[V, T, R any, E error](f Function[T, R, E], before Function[V, T, E]) Function[V, R, E] {
	fallible.RequireNonNil(f, "f")
	fallible.RequireNonNil(before, "before")
	return func(arg V) (R, E) {
		t, err := before(arg)
		if fallible.Failed(err) {
			var zero R
			return zero, err
		}
		return f(t)
	}
}

// AndThen returns a Function that applies f and then after. A failure
// of f is returned unchanged and after is not called.
func AndThen[T, R, V any, E error](f Function[T, R, E], after Function[R, V, E]) Function[T, V, E] {
	fallible.RequireNonNil(f, "f")
	fallible.RequireNonNil(after, "after")
	return func(arg T) (V, E) {
		r, err := f(arg)
		if fallible.Failed(err) {
			var zero V
			return zero, err
		}
		return after(r)
	}
}
