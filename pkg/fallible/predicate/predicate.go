// Package predicate adapts boolean-valued functions that may fail with E.
//
// Besides the usual Lift/Unchecked/Sneaky/Try adapters it provides the
// logical combinators And, Or and Negate. And and Or short-circuit: the
// second predicate is neither evaluated nor able to fail once the first
// one decides the outcome.
package predicate

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

type Predicate[T any, E error] func(arg T) (bool, E)

func Lift[T any, E error](p Predicate[T, E]) func(T) fallible.Optional[bool] {
	return function.Lift(asFunction(p))
}

// Unchecked panics with a *fallible.WrappedError when p fails.
func Unchecked[T any, E error](p Predicate[T, E]) func(T) bool {
	return function.Unchecked(asFunction(p))
}

// Sneaky panics with p's error value when p fails. The returned
// predicate does not declare E.
func Sneaky[T any, E error](p Predicate[T, E]) func(T) bool {
	return function.Sneaky(asFunction(p))
}

func Try[T any, E error](p Predicate[T, E]) func(T) fallible.Result[bool] {
	return function.Try(asFunction(p))
}

// Compose tests p against the value produced by before.
func Compose[V, T any, E error](p Predicate[T, E], before function.Function[V, T, E]) Predicate[V, E] {
	return Predicate[V, E](function.Compose(asFunction(p), before))
}

func And[T any, E error](p, other Predicate[T, E]) Predicate[T, E] {
	fallible.RequireNonNil(p, "p")
	fallible.RequireNonNil(other, "other")
	return func(arg T) (bool, E) {
		ok, err := p(arg)
		if fallible.Failed(err) || !ok {
			return false, err
		}
		return other(arg)
	}
}

func Or[T any, E error](p, other Predicate[T, E]) Predicate[T, E] {
	fallible.RequireNonNil(p, "p")
	fallible.RequireNonNil(other, "other")
	return func(arg T) (bool, E) {
		ok, err := p(arg)
		if fallible.Failed(err) {
			return false, err
		}
		if ok {
			return true, err
		}
		return other(arg)
	}
}

func Negate[T any, E error](p Predicate[T, E]) Predicate[T, E] {
	fallible.RequireNonNil(p, "p")
	return func(arg T) (bool, E) {
		ok, err := p(arg)
		if fallible.Failed(err) {
			return false, err
		}
		return !ok, err
	}
}

func asFunction[T any, E error](p Predicate[T, E]) function.Function[T, bool, E] {
	fallible.RequireNonNil(p, "p")
	return function.Function[T, bool, E](p)
}
