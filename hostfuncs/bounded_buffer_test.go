package hostfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedBuffer_Write(t *testing.T) {
	t.Run("writes within limit", func(t *testing.T) {
		buf := NewBoundedBuffer(100)
		n, err := buf.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "hello", buf.String())
		assert.False(t, buf.Truncated)
	})

	t.Run("truncates at limit", func(t *testing.T) {
		buf := NewBoundedBuffer(10)
		n, err := buf.Write([]byte("hello world"))
		require.NoError(t, err)
		// reports the full length to satisfy io.Writer
		assert.Equal(t, 11, n)
		assert.Equal(t, "hello worl", buf.String())
		assert.True(t, buf.Truncated)
	})

	t.Run("discards once full", func(t *testing.T) {
		buf := NewBoundedBuffer(5)
		_, _ = buf.Write([]byte("hello"))
		n, err := buf.Write([]byte("more"))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, 5, buf.Len())
		assert.True(t, buf.Truncated)
	})
}

func TestBoundedBuffer_Reset(t *testing.T) {
	buf := NewBoundedBuffer(3)
	_, _ = buf.Write([]byte("abcdef"))
	require.True(t, buf.Truncated)

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.False(t, buf.Truncated)
	assert.Empty(t, buf.Bytes())
}
