package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("lowercases and trims punctuation", func(t *testing.T) {
		got := Extract("Hello, World! (Again)", 0, false)
		assert.Equal(t, []string{"hello", "world", "again"}, got)
	})

	t.Run("deduplicates preserving first occurrence", func(t *testing.T) {
		got := Extract("go go gadget go", 0, false)
		assert.Equal(t, []string{"go", "gadget"}, got)
	})

	t.Run("filters stop words when requested", func(t *testing.T) {
		got := Extract("the tower is in the city", 0, true)
		assert.Equal(t, []string{"tower", "city"}, got)
	})

	t.Run("keeps stop words without filtering", func(t *testing.T) {
		got := Extract("the tower", 0, false)
		assert.Equal(t, []string{"the", "tower"}, got)
	})

	t.Run("respects max", func(t *testing.T) {
		got := Extract("one two three four", 2, false)
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, Extract("", 5, true))
	})
}
