package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewReader(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewReader(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("subdirectory entry rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "foo")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

		_, err := NewReader(dir)
		assert.ErrorIs(t, err, ErrNotAFile)
	})

	t.Run("hidden files excluded by default", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "foo")
		writeFile(t, dir, ".hidden", "secret")

		r, err := NewReader(dir)
		require.NoError(t, err)

		docs, err := r.LoadDocuments(false)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "foo", docs[0].Body)
	})

	t.Run("hidden files included on request", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "foo")
		writeFile(t, dir, ".hidden", "secret")

		r, err := NewReader(dir, WithHiddenFiles())
		require.NoError(t, err)

		docs, err := r.LoadDocuments(false)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("hidden directory still rejected when included", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

		_, err := NewReader(dir, WithHiddenFiles())
		assert.ErrorIs(t, err, ErrNotAFile)
	})
}

func TestLoadDocuments(t *testing.T) {
	t.Run("concatenate joins bodies with newline", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "foo")
		writeFile(t, dir, "b.txt", "bar")

		r, err := NewReader(dir)
		require.NoError(t, err)

		docs, err := r.LoadDocuments(true)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "foo\nbar", docs[0].Body)
		assert.True(t, docs[0].Complete)
	})

	t.Run("one document per file in enumeration order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "foo")
		writeFile(t, dir, "b.txt", "bar")

		r, err := NewReader(dir)
		require.NoError(t, err)

		docs, err := r.LoadDocuments(false)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "foo", docs[0].Body)
		assert.Equal(t, "a.txt", docs[0].ExtraInfo["file"])
		assert.Equal(t, "bar", docs[1].Body)
		assert.Equal(t, "b.txt", docs[1].ExtraInfo["file"])
	})

	t.Run("empty directory", func(t *testing.T) {
		r, err := NewReader(t.TempDir())
		require.NoError(t, err)

		docs, err := r.LoadDocuments(false)
		require.NoError(t, err)
		assert.Empty(t, docs)

		docs, err = r.LoadDocuments(true)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Empty(t, docs[0].Body)
	})
}
