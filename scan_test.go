package semver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := newCursor("ab")

	b, ok := c.peek1()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	// Peeking again sees the same byte.
	b, ok = c.peek1()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	b, ok = c.take1()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	b, ok = c.peek1()
	require.True(t, ok)
	require.Equal(t, byte('b'), b)
}

func TestCursorTakeAdvancesByOne(t *testing.T) {
	c := newCursor("xyz")
	for _, want := range []byte("xyz") {
		require.False(t, c.atEOF())
		b, ok := c.take1()
		require.True(t, ok)
		require.Equal(t, want, b)
	}
	require.True(t, c.atEOF())

	_, ok := c.take1()
	require.False(t, ok)
	_, ok = c.peek1()
	require.False(t, ok)
}

func TestCursorTakeWhile(t *testing.T) {
	c := newCursor("123abc")

	run, err := c.takeWhile(isDigit)
	require.NoError(t, err)
	require.Equal(t, "123", run)

	// The boundary byte stays unconsumed.
	b, ok := c.peek1()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	run, err = c.takeWhile(isDigit)
	require.NoError(t, err)
	require.Equal(t, "", run)

	run, err = c.takeWhile(isAlphanumeric)
	require.NoError(t, err)
	require.Equal(t, "abc", run)
	require.True(t, c.atEOF())

	run, err = c.takeWhile(isAlphanumeric)
	require.NoError(t, err)
	require.Equal(t, "", run)
}

func TestCursorTakeWhileInvalidEncoding(t *testing.T) {
	c := newCursor("\xff\xfe")

	_, err := c.takeWhile(func(byte) bool { return true })
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, KindIO, pe.Kind)
	require.ErrorIs(t, err, errInvalidEncoding)
}
