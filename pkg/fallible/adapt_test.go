package fallible_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/fallibletest"
)

// errCode is an error of value kind: its zero value means success.
type errCode int

func (c errCode) Error() string { return "code " + strconv.Itoa(int(c)) }

type pathError struct {
	path string
}

func (e *pathError) Error() string { return "bad path: " + e.path }

func TestLiftCall_Success(t *testing.T) {
	t.Parallel()

	out := fallible.LiftCall(func() (int, error) { return 42, nil })
	assert.Equal(t, fallible.Of(42), out)
}

func TestLiftCall_Failure(t *testing.T) {
	t.Parallel()

	out := fallible.LiftCall(func() (int, error) { return 7, errors.New("boom") })
	assert.True(t, out.IsEmpty())
	assert.Equal(t, fallible.Empty[int](), out)
}

func TestLiftCall_NilResultIsPresent(t *testing.T) {
	t.Parallel()

	out := fallible.LiftCall(func() (*int, error) { return nil, nil })
	v, ok := out.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestLiftCall_AbsorbsErrorPanic(t *testing.T) {
	t.Parallel()

	out := fallible.LiftCall(func() (int, error) {
		var m map[string]int
		m["x"] = 1 // assignment to nil map
		return 1, nil
	})
	assert.True(t, out.IsEmpty())
}

func TestLiftCall_AbsorbsNonErrorPanic(t *testing.T) {
	t.Parallel()

	var out fallible.Optional[int]
	_, panicked := fallibletest.PanicValue(func() {
		out = fallible.LiftCall(func() (int, error) { panic("boom") })
	})
	require.False(t, panicked)
	assert.Equal(t, fallible.Empty[int](), out)
}

func TestLiftCall_TypedNilPointerIsSuccess(t *testing.T) {
	t.Parallel()

	out := fallible.LiftCall(func() (string, *pathError) { return "ok", nil })
	assert.Equal(t, fallible.Of("ok"), out)
}

func TestValueKindError_ZeroIsSuccess(t *testing.T) {
	t.Parallel()

	ok := func() (int, errCode) { return 7, 0 }
	assert.Equal(t, fallible.Of(7), fallible.LiftCall(ok))
	assert.Equal(t, 7, fallible.UncheckedCall(ok))
	assert.Equal(t, 7, fallible.SneakyCall(ok))
	assert.True(t, fallible.TryCall(ok).IsSuccess())

	bad := func() (int, errCode) { return 0, 3 }
	assert.True(t, fallible.LiftCall(bad).IsEmpty())
	assert.Equal(t, errCode(3), fallible.Catch(func() { fallible.SneakyCall(bad) }))

	res := fallible.TryCall(bad)
	require.True(t, res.IsFailure())
	assert.Equal(t, errCode(3), res.Err())
}

func TestFailed(t *testing.T) {
	t.Parallel()

	var nilErr error
	var nilPath *pathError

	assert.False(t, fallible.Failed(nilErr))
	assert.False(t, fallible.Failed(nilPath))
	assert.False(t, fallible.Failed(errCode(0)))
	assert.False(t, fallible.Failed[error](errCode(0)))
	assert.True(t, fallible.Failed(errCode(1)))
	assert.True(t, fallible.Failed(&pathError{}))
	assert.True(t, fallible.Failed(errors.New("x")))
}

func TestUncheckedCall_Success(t *testing.T) {
	t.Parallel()

	got := fallible.UncheckedCall(func() (int, error) { return strconv.Atoi("12") })
	assert.Equal(t, 12, got)
}

func TestUncheckedCall_WrapsFailure(t *testing.T) {
	t.Parallel()

	cause := fallibletest.NewIOError("some message")
	v, panicked := fallibletest.PanicValue(func() {
		fallible.UncheckedCall(func() (int, error) { return 0, cause })
	})
	require.True(t, panicked)

	wrapped, ok := v.(*fallible.WrappedError)
	require.True(t, ok, "expected *WrappedError, got %T", v)
	assert.Equal(t, "some message", wrapped.Error())
	assert.Same(t, cause, wrapped.Cause())
	assert.Same(t, cause, errors.Unwrap(wrapped))
}

func TestUncheckedCall_PropagatesPanicUnchanged(t *testing.T) {
	t.Parallel()

	own := errors.New("own panic")
	v, panicked := fallibletest.PanicValue(func() {
		fallible.UncheckedCall(func() (int, error) { panic(own) })
	})
	require.True(t, panicked)
	assert.Same(t, own, v)
}

func TestSneakyCall_RethrowsOriginal(t *testing.T) {
	t.Parallel()

	cause := &pathError{path: "/tmp/x"}
	v, panicked := fallibletest.PanicValue(func() {
		fallible.SneakyCall(func() (int, *pathError) { return 0, cause })
	})
	require.True(t, panicked)
	assert.Same(t, cause, v)
	assert.Nil(t, errors.Unwrap(v.(error)))
}

func TestSneakyCall_Success(t *testing.T) {
	t.Parallel()

	got := fallible.SneakyCall(func() (string, error) { return "v", nil })
	assert.Equal(t, "v", got)
}

func TestTryCall(t *testing.T) {
	t.Parallel()

	ok := fallible.TryCall(func() (int, error) { return 3, nil })
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 3, ok.Result())

	cause := errors.New("try failed")
	failed := fallible.TryCall(func() (int, error) { return 0, cause })
	assert.True(t, failed.IsFailure())
	assert.Same(t, cause, failed.Err())

	panicked := fallible.TryCall(func() (int, error) { panic(cause) })
	assert.True(t, panicked.IsFailure())
	assert.Same(t, cause, panicked.Err())

	nonError := fallible.TryCall(func() (int, error) { panic("boom") })
	require.True(t, nonError.IsFailure())
	var panicErr *fallible.PanicError
	require.ErrorAs(t, nonError.Err(), &panicErr)
	assert.Equal(t, "boom", panicErr.Value)
	assert.NotEmpty(t, panicErr.Stack)
	assert.EqualError(t, panicErr, "fallible: panic: boom")
}

func TestRunVariants(t *testing.T) {
	t.Parallel()

	cause := errors.New("run failed")
	fail := func() error { return cause }
	pass := func() error { return nil }

	assert.True(t, fallible.LiftRun(pass))
	assert.False(t, fallible.LiftRun(fail))

	assert.NotPanics(t, func() { fallible.UncheckedRun(pass) })
	err := fallible.Catch(func() { fallible.UncheckedRun(fail) })
	var wrapped *fallible.WrappedError
	require.ErrorAs(t, err, &wrapped)
	assert.Same(t, cause, wrapped.Cause())

	err = fallible.Catch(func() { fallible.SneakyRun(fail) })
	assert.Same(t, cause, err)
}
