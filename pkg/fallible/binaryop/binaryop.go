// Package binaryop adapts functions that combine two values of the same
// type into a third and may fail with E.
package binaryop

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/bifunction"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

type BinaryOperator[T any, E error] func(a, b T) (T, E)

func Lift[T any, E error](op BinaryOperator[T, E]) func(T, T) fallible.Optional[T] {
	return bifunction.Lift(asBiFunction(op))
}

// Unchecked panics with a *fallible.WrappedError when op fails.
func Unchecked[T any, E error](op BinaryOperator[T, E]) func(T, T) T {
	return bifunction.Unchecked(asBiFunction(op))
}

// Sneaky panics with op's error value when op fails, without declaring E.
func Sneaky[T any, E error](op BinaryOperator[T, E]) func(T, T) T {
	return bifunction.Sneaky(asBiFunction(op))
}

func Try[T any, E error](op BinaryOperator[T, E]) func(T, T) fallible.Result[T] {
	return bifunction.Try(asBiFunction(op))
}

// AndThen applies op and then after to its result.
func AndThen[T any, E error](op BinaryOperator[T, E], after function.Function[T, T, E]) BinaryOperator[T, E] {
	return BinaryOperator[T, E](bifunction.AndThen(asBiFunction(op), after))
}

// MinBy returns an operator picking the lesser of two values according to
// less. A failure of less is returned unchanged.
func MinBy[T any, E error](less func(a, b T) (bool, E)) BinaryOperator[T, E] {
	fallible.RequireNonNil(less, "less")
	return func(a, b T) (T, E) {
		ok, err := less(b, a)
		if fallible.Failed(err) {
			var zero T
			return zero, err
		}
		if ok {
			return b, err
		}
		return a, err
	}
}

// MaxBy returns an operator picking the greater of two values according
// to less.
func MaxBy[T any, E error](less func(a, b T) (bool, E)) BinaryOperator[T, E] {
	fallible.RequireNonNil(less, "less")
	return func(a, b T) (T, E) {
		ok, err := less(a, b)
		if fallible.Failed(err) {
			var zero T
			return zero, err
		}
		if ok {
			return b, err
		}
		return a, err
	}
}

func asBiFunction[T any, E error](op BinaryOperator[T, E]) bifunction.BiFunction[T, T, T, E] {
	fallible.RequireNonNil(op, "op")
	return bifunction.BiFunction[T, T, T, E](op)
}
