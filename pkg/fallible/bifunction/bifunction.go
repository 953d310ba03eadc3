// Package bifunction adapts two-argument functions that may fail with E.
package bifunction

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

// BiFunction is a function of two arguments that may fail with E.
type BiFunction[T, U, R any, E error] func(t T, u U) (R, E)

// Lift returns a function reporting f's result as an Optional; any
// failure of f yields an empty Optional.
func Lift[T, U, R any, E error](f BiFunction[T, U, R, E]) func(T, U) fallible.Optional[R] {
	fallible.RequireNonNil(f, "f")
	return func(t T, u U) fallible.Optional[R] {
		return fallible.LiftCall(func() (R, E) { return f(t, u) })
	}
}

// Unchecked returns a function that panics with a *fallible.WrappedError
// when f fails.
func Unchecked[T, U, R any, E error](f BiFunction[T, U, R, E]) func(T, U) R {
	fallible.RequireNonNil(f, "f")
	return func(t T, u U) R {
		return fallible.UncheckedCall(func() (R, E) { return f(t, u) })
	}
}

// Sneaky returns a function that panics with f's own error when f fails.
// E is erased from the returned signature.
func Sneaky[T, U, R any, E error](f BiFunction[T, U, R, E]) func(T, U) R {
	fallible.RequireNonNil(f, "f")
	return func(t T, u U) R {
		return fallible.SneakyCall(func() (R, E) { return f(t, u) })
	}
}

func Try[T, U, R any, E error](f BiFunction[T, U, R, E]) func(T, U) fallible.Result[R] {
	fallible.RequireNonNil(f, "f")
	return func(t T, u U) fallible.Result[R] {
		return fallible.TryCall(func() (R, E) { return f(t, u) })
	}
}

// AndThen returns a BiFunction that applies f and then after.
func AndThen[T, U, R, V any, E error](f BiFunction[T, U, R, E], after function.Function[R, V, E]) BiFunction[T, U, V, E] {
	fallible.RequireNonNil(f, "f")
	fallible.RequireNonNil(after, "after")
	return func(t T, u U) (V, E) {
		r, err := f(t, u)
		if fallible.Failed(err) {
			var zero V
			return zero, err
		}
		return after(r)
	}
}
