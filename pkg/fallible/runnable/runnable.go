// Package runnable adapts functions of no arguments that only report an
// error of type E.
package runnable

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

type Runnable[E error] func() E

// Lift returns a function that reports whether r succeeded.
func Lift[E error](r Runnable[E]) func() bool {
	fallible.RequireNonNil(r, "r")
	return func() bool {
		return fallible.LiftRun(r)
	}
}

// Unchecked panics with a *fallible.WrappedError when r fails.
func Unchecked[E error](r Runnable[E]) func() {
	fallible.RequireNonNil(r, "r")
	return func() {
		fallible.UncheckedRun(r)
	}
}

// Sneaky panics with the error returned by r, unwrapped.
func Sneaky[E error](r Runnable[E]) func() {
	fallible.RequireNonNil(r, "r")
	return func() {
		fallible.SneakyRun(r)
	}
}

// AndThen runs r and then after; after is skipped when r fails.
func AndThen[E error](r Runnable[E], after Runnable[E]) Runnable[E] {
	fallible.RequireNonNil(r, "r")
	fallible.RequireNonNil(after, "after")
	return func() E {
		if err := r(); fallible.Failed(err) {
			return err
		}
		return after()
	}
}
