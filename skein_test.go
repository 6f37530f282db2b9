package skein

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeinlabs/skein/config"
	"github.com/skeinlabs/skein/reader/directory"
	"github.com/skeinlabs/skein/source/slack"
)

func TestLoadSlackDocuments(t *testing.T) {
	t.Run("missing token fails before any fetch", func(t *testing.T) {
		cfg := config.Default()
		cfg.Slack.Channels = []string{"C1"}

		_, err := LoadSlackDocuments(context.Background(), cfg)
		assert.ErrorIs(t, err, slack.ErrTokenRequired)
	})
}

func TestLoadDirectoryDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("foo"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bar"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))

	t.Run("concatenated", func(t *testing.T) {
		docs, err := LoadDirectoryDocuments(dir, true)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "foo\nbar", docs[0].Body)
	})

	t.Run("per file including hidden", func(t *testing.T) {
		docs, err := LoadDirectoryDocuments(dir, false, directory.WithHiddenFiles())
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})
}
