package unaryop

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/fallibletest"
)

func TestShouldApply(t *testing.T) {
	t.Parallel()

	var op UnaryOperator[int, *fallibletest.IOError] = func(i int) (int, *fallibletest.IOError) { return i, nil }

	out, err := op(42)
	assert.Nil(t, err)
	assert.Equal(t, 42, out)
}

func TestShouldApplyUnchecked(t *testing.T) {
	t.Parallel()

	op := func(i int) (int, *fallibletest.IOError) { return i, nil }

	assert.Equal(t, 42, Unchecked(op)(42))
	assert.Equal(t, fallible.Of(42), Lift(op)(42))
}

func TestShouldApplyUncheckedAndThrow(t *testing.T) {
	t.Parallel()

	cause := fallibletest.NewIOError("some message")
	op := func(i int) (int, *fallibletest.IOError) { return 0, cause }

	v, panicked := fallibletest.PanicValue(func() { Unchecked(op)(42) })
	require.True(t, panicked)

	wrapped, ok := v.(*fallible.WrappedError)
	require.True(t, ok, "expected *WrappedError, got %T", v)
	assert.EqualError(t, wrapped, cause.Error())
	assert.Same(t, cause, wrapped.Cause())
}

func TestShouldApplyUncheckedAndThrowOnNil(t *testing.T) {
	t.Parallel()

	v, panicked := fallibletest.PanicValue(func() { Unchecked[int, error](nil)(42) })
	require.True(t, panicked)

	var argErr *fallible.ArgumentNullError
	require.ErrorAs(t, v.(error), &argErr)
	assert.Equal(t, "op", argErr.Name)
}

func TestSneaky(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad input")
	op := func(s string) (string, error) { return "", cause }

	err := fallible.Catch(func() { Sneaky(op)("x") })
	assert.Same(t, cause, err)
}

func TestTry(t *testing.T) {
	t.Parallel()

	res := Try(Identity[string, error]())("same")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "same", res.Result())
}

func TestComposeAndThen(t *testing.T) {
	t.Parallel()

	trim := func(s string) (string, error) { return strings.TrimSpace(s), nil }
	upper := func(s string) (string, error) {
		if s == "" {
			return "", errors.New("empty")
		}
		return strings.ToUpper(s), nil
	}

	out, err := Compose(upper, trim)("  go ")
	require.NoError(t, err)
	assert.Equal(t, "GO", out)

	out, err = AndThen(trim, upper)("  go ")
	require.NoError(t, err)
	assert.Equal(t, "GO", out)

	_, err = AndThen(trim, upper)("   ")
	assert.EqualError(t, err, "empty")
}
