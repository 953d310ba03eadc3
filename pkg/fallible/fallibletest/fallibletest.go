// Package fallibletest provides helpers for testing code built on the
// fallible adapters.
package fallibletest

// IOError stands in for an I/O failure declared by a function under test.
type IOError struct {
	Msg string
}

func NewIOError(msg string) *IOError {
	return &IOError{Msg: msg}
}

func (e *IOError) Error() string {
	return e.Msg
}

// PanicValue runs fn and returns the recovered panic value, if any.
func PanicValue(fn func()) (value interface{}, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			value = r
			panicked = true
		}
	}()

	fn()
	return nil, false
}
