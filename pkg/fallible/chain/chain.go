package chain

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
)

// Chain wraps a function.Function to enable fluent composition
type Chain[T, R any, E error] struct {
	fn function.Function[T, R, E]
}

// Start creates a new chain from f
func Start[T, R any, E error](f function.Function[T, R, E]) *Chain[T, R, E] {
	fallible.RequireNonNil(f, "f")
	return &Chain[T, R, E]{fn: f}
}

// From creates a chain that starts with the identity stage
func From[T any, E error]() *Chain[T, T, E] {
	return Start(function.Identity[T, E]())
}

// Then appends a stage that runs on the chain's result
func Then[T, R, V any, E error](c *Chain[T, R, E], next function.Function[R, V, E]) *Chain[T, V, E] {
	return &Chain[T, V, E]{fn: function.AndThen(c.fn, next)}
}

// Map appends a stage that cannot fail
func Map[T, R, V any, E error](c *Chain[T, R, E], next func(R) V) *Chain[T, V, E] {
	fallible.RequireNonNil(next, "next")
	return Then(c, func(r R) (V, E) {
		var ok E
		return next(r), ok
	})
}

// Before prepends a stage that converts the chain's input
func Before[V, T, R any, E error](c *Chain[T, R, E], before function.Function[V, T, E]) *Chain[V, R, E] {
	return &Chain[V, R, E]{fn: function.Compose(c.fn, before)}
}

// Func returns the composed function
func (c *Chain[T, R, E]) Func() function.Function[T, R, E] {
	return c.fn
}

// Apply runs the chain once
func (c *Chain[T, R, E]) Apply(arg T) (R, E) {
	return c.fn(arg)
}

func (c *Chain[T, R, E]) Lift() func(T) fallible.Optional[R] {
	return function.Lift(c.fn)
}

func (c *Chain[T, R, E]) Unchecked() func(T) R {
	return function.Unchecked(c.fn)
}

func (c *Chain[T, R, E]) Sneaky() func(T) R {
	return function.Sneaky(c.fn)
}

func (c *Chain[T, R, E]) Try() func(T) fallible.Result[R] {
	return function.Try(c.fn)
}
