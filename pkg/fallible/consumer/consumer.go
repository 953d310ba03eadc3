// Package consumer adapts single-argument functions that return only an
// error of type E.
package consumer

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

type Consumer[T any, E error] func(arg T) E

// Lift returns a function that reports whether c succeeded. The failure
// itself is discarded.
func Lift[T any, E error](c Consumer[T, E]) func(T) bool {
	fallible.RequireNonNil(c, "c")
	return func(arg T) bool {
		return fallible.LiftRun(func() E { return c(arg) })
	}
}

// Unchecked panics with a *fallible.WrappedError when c fails.
func Unchecked[T any, E error](c Consumer[T, E]) func(T) {
	fallible.RequireNonNil(c, "c")
	return func(arg T) {
		fallible.UncheckedRun(func() E { return c(arg) })
	}
}

// Sneaky panics with the error returned by c. E is erased from the
// returned signature.
func Sneaky[T any, E error](c Consumer[T, E]) func(T) {
	fallible.RequireNonNil(c, "c")
	return func(arg T) {
		fallible.SneakyRun(func() E { return c(arg) })
	}
}

// AndThen returns a Consumer that passes its argument to c and then to
// after. after is skipped when c fails.
func AndThen[T any, E error](c Consumer[T, E], after Consumer[T, E]) Consumer[T, E] {
	fallible.RequireNonNil(c, "c")
	fallible.RequireNonNil(after, "after")
	return func(arg T) E {
		if err := c(arg); fallible.Failed(err) {
			return err
		}
		return after(arg)
	}
}

// Compose returns a Consumer that converts its argument with before and
// passes the result to c.
func Compose[V, T any, E error](c Consumer[T, E], before function.Function[V, T, E]) Consumer[V, E] {
	fallible.RequireNonNil(c, "c")
	fallible.RequireNonNil(before, "before")
	return func(arg V) E {
		t, err := before(arg)
		if fallible.Failed(err) {
			return err
		}
		return c(t)
	}
}
