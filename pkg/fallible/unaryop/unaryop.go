// Package unaryop adapts functions that map a value to a value of the same
// type and may fail with E.
package unaryop

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

type UnaryOperator[T any, E error] func(arg T) (T, E)

// Identity returns an operator that returns its argument unchanged.
func Identity[T any, E error]() UnaryOperator[T, E] {
	return UnaryOperator[T, E](function.Identity[T, E]())
}

func Lift[T any, E error](op UnaryOperator[T, E]) func(T) fallible.Optional[T] {
	return function.Lift(function.Function[T, T, E](requireOp(op)))
}

// Unchecked panics with a *fallible.WrappedError when op fails.
func Unchecked[T any, E error](op UnaryOperator[T, E]) func(T) T {
	return function.Unchecked(function.Function[T, T, E](requireOp(op)))
}

// Sneaky panics with op's error value when op fails, without declaring E.
func Sneaky[T any, E error](op UnaryOperator[T, E]) func(T) T {
	return function.Sneaky(function.Function[T, T, E](requireOp(op)))
}

func Try[T any, E error](op UnaryOperator[T, E]) func(T) fallible.Result[T] {
	return function.Try(function.Function[T, T, E](requireOp(op)))
}

// Compose applies before and then op.
func Compose[T any, E error](op UnaryOperator[T, E], before UnaryOperator[T, E]) UnaryOperator[T, E] {
	fallible.RequireNonNil(before, "before")
	return UnaryOperator[T, E](function.Compose(
		function.Function[T, T, E](requireOp(op)),
		function.Function[T, T, E](before)))
}

// AndThen applies op and then after.
func AndThen[T any, E error](op UnaryOperator[T, E], after UnaryOperator[T, E]) UnaryOperator[T, E] {
	fallible.RequireNonNil(after, "after")
	return UnaryOperator[T, E](function.AndThen(
		function.Function[T, T, E](requireOp(op)),
		function.Function[T, T, E](after)))
}

func requireOp[T any, E error](op UnaryOperator[T, E]) UnaryOperator[T, E] {
	fallible.RequireNonNil(op, "op")
	return op
}
