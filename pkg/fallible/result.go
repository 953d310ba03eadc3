package fallible

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the explicit success-or-failure channel produced by the Try
// adapters. Every Result gets its own id and creation time; results
// derived with FailFrom keep both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail panics with an *ArgumentNullError when err is nil.
func Fail[T any](err error) Result[T] {
	RequireNonNil(err, "err")
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure of from over to a Result of another type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// IsEmpty reports whether r is the zero Result.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// String identifies the Result by id and creation time, so a failure logged
// by the caller can be matched to the Result it came from.
func (r Result[T]) String() string {
	at := r.createdAt.Format(time.RFC3339Nano)
	if r.isSuccess {
		return fmt.Sprintf("Result[%s @ %s](success: %v)", r.id, at, r.result)
	}
	return fmt.Sprintf("Result[%s @ %s](failure: %v)", r.id, at, r.err)
}

// Get returns the value and error in the usual Go order.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

// Optional drops the failure, keeping only a successful value.
func (r Result[T]) Optional() Optional[T] {
	if !r.isSuccess {
		return Empty[T]()
	}
	return Of(r.result)
}
