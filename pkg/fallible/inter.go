package fallible

import "time"

// ResultProvider exposes the value of an outcome and when it was produced.
type ResultProvider[T any] interface {
	Result() T
	CreatedAt() time.Time
}

// WithError is an outcome that is either a value or an error. Result
// satisfies it; Finally consumes it.
type WithError[T any] interface {
	ResultProvider[T]
	// Err is nil for a successful outcome.
	Err() error
	IsSuccess() bool
}
