// Package biconsumer adapts two-argument functions that return only an
// error of type E.
package biconsumer

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

type BiConsumer[T, U any, E error] func(t T, u U) E

// Lift returns a function that reports whether c succeeded.
func Lift[T, U any, E error](c BiConsumer[T, U, E]) func(T, U) bool {
	fallible.RequireNonNil(c, "c")
	return func(t T, u U) bool {
		return fallible.LiftRun(func() E { return c(t, u) })
	}
}

// Unchecked panics with a *fallible.WrappedError when c fails.
func Unchecked[T, U any, E error](c BiConsumer[T, U, E]) func(T, U) {
	fallible.RequireNonNil(c, "c")
	return func(t T, u U) {
		fallible.UncheckedRun(func() E { return c(t, u) })
	}
}

// Sneaky panics with the error returned by c, unwrapped. The returned
// function does not declare E, so callers are not forced to handle it.
func Sneaky[T, U any, E error](c BiConsumer[T, U, E]) func(T, U) {
	fallible.RequireNonNil(c, "c")
	return func(t T, u U) {
		fallible.SneakyRun(func() E { return c(t, u) })
	}
}

// AndThen returns a BiConsumer that runs c and then after with the same
// arguments. after is skipped when c fails.
func AndThen[T, U any, E error](c BiConsumer[T, U, E], after BiConsumer[T, U, E]) BiConsumer[T, U, E] {
	fallible.RequireNonNil(c, "c")
	fallible.RequireNonNil(after, "after")
	return func(t T, u U) E {
		if err := c(t, u); fallible.Failed(err) {
			return err
		}
		return after(t, u)
	}
}
