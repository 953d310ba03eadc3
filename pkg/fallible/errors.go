package fallible

import (
	"errors"
	"fmt"
)

// ErrNilArgument is matched by every *ArgumentNullError through errors.Is.
var ErrNilArgument = errors.New("fallible: nil argument")

// WrappedError carries a failure raised by an Unchecked adapter.
// Its message is the message of the wrapped error and Unwrap returns
// the wrapped value itself.
type WrappedError struct {
	cause error
}

// Wrap returns a new *WrappedError around err. It panics with an
// *ArgumentNullError when err is nil.
func Wrap(err error) *WrappedError {
	RequireNonNil(err, "err")
	return &WrappedError{cause: err}
}

func (e *WrappedError) Error() string {
	if e == nil || e.cause == nil {
		return "<nil>"
	}
	return e.cause.Error()
}

func (e *WrappedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Cause is the same as Unwrap.
func (e *WrappedError) Cause() error {
	return e.Unwrap()
}

// PanicError carries a panic value that is not an error, recovered by a
// Try adapter.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fallible: panic: %v", e.Value)
}

// ArgumentNullError is panicked by adapter constructors when a required
// function argument is nil.
type ArgumentNullError struct {
	Name string
}

func (e *ArgumentNullError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fallible: %s must not be nil", e.Name)
}

func (e *ArgumentNullError) Is(target error) bool {
	return target == ErrNilArgument
}

// RequireNonNil panics with an *ArgumentNullError naming the argument
// when v is nil.
func RequireNonNil(v interface{}, name string) {
	if IsNil(v) {
		panic(&ArgumentNullError{Name: name})
	}
}
