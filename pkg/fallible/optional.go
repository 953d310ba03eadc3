package fallible

import "fmt"

// Optional holds a value that may be absent. The zero Optional is empty.
//
// A present Optional may hold a nil value: lifting a function that
// successfully returns a nil pointer yields Of(nil), not Empty.
type Optional[T any] struct {
	value   T
	present bool
}

func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// OrElse returns the value if present, otherwise other.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value if present, otherwise the result of other.
// other is not called for a present Optional.
func (o Optional[T]) OrElseGet(other func() T) T {
	if o.present {
		return o.value
	}
	return other()
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// MapOptional applies f to a present value.
func MapOptional[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(f(o.value))
}
