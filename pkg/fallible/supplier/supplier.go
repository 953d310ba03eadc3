// Package supplier adapts functions of no arguments that produce a value
// or fail with E.
package supplier

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

type Supplier[R any, E error] func() (R, E)

func Lift[R any, E error](s Supplier[R, E]) func() fallible.Optional[R] {
	fallible.RequireNonNil(s, "s")
	return func() fallible.Optional[R] {
		return fallible.LiftCall(s)
	}
}

// Unchecked panics with a *fallible.WrappedError when s fails.
func Unchecked[R any, E error](s Supplier[R, E]) func() R {
	fallible.RequireNonNil(s, "s")
	return func() R {
		return fallible.UncheckedCall(s)
	}
}

// Sneaky panics with the error returned by s, unwrapped. E is erased from
// the returned signature.
func Sneaky[R any, E error](s Supplier[R, E]) func() R {
	fallible.RequireNonNil(s, "s")
	return func() R {
		return fallible.SneakyCall(s)
	}
}

func Try[R any, E error](s Supplier[R, E]) func() fallible.Result[R] {
	fallible.RequireNonNil(s, "s")
	return func() fallible.Result[R] {
		return fallible.TryCall(s)
	}
}

// AndThen feeds the supplied value to after. A failure of s is returned
// unchanged and after is not called.
func AndThen[R, V any, E error](s Supplier[R, E], after function.Function[R, V, E]) Supplier[V, E] {
	fallible.RequireNonNil(s, "s")
	fallible.RequireNonNil(after, "after")
	return func() (V, E) {
		r, err := s()
		if fallible.Failed(err) {
			var zero V
			return zero, err
		}
		return after(r)
	}
}
