package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("starts with empty token and not done", func(t *testing.T) {
		c := Start()
		assert.Empty(t, c.Token())
		assert.False(t, c.Done())
	})

	t.Run("final page ends the sequence", func(t *testing.T) {
		c, err := Start().Advance(Page{HasMore: false})
		require.NoError(t, err)
		assert.True(t, c.Done())
	})

	t.Run("continuation carries the next token", func(t *testing.T) {
		c, err := Start().Advance(Page{HasMore: true, NextCursor: "tok-1"})
		require.NoError(t, err)
		assert.False(t, c.Done())
		assert.Equal(t, "tok-1", c.Token())

		c, err = c.Advance(Page{HasMore: true, NextCursor: "tok-2"})
		require.NoError(t, err)
		assert.Equal(t, "tok-2", c.Token())

		c, err = c.Advance(Page{HasMore: false})
		require.NoError(t, err)
		assert.True(t, c.Done())
	})

	t.Run("has more without token is a terminal error", func(t *testing.T) {
		c, err := Start().Advance(Page{HasMore: true})
		assert.ErrorIs(t, err, ErrMissingCursor)
		assert.True(t, c.Done())
	})

	t.Run("advancing an exhausted cursor fails", func(t *testing.T) {
		c, err := Start().Advance(Page{HasMore: false})
		require.NoError(t, err)
		require.True(t, c.Done())

		_, err = c.Advance(Page{HasMore: false})
		assert.ErrorIs(t, err, ErrCursorExhausted)
	})
}
