package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactProbe_Exists(t *testing.T) {
	t.Parallel()

	t.Run("finds built documentation", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		path := sensei.LocalDocPath(base, "serde")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		assert.True(t, fs.NewArtifactProbe().Exists(path))
	})

	t.Run("missing documentation", func(t *testing.T) {
		t.Parallel()

		path := sensei.LocalDocPath(t.TempDir(), "serde")

		assert.False(t, fs.NewArtifactProbe().Exists(path))
	})

	t.Run("directory is not an artifact", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		assert.False(t, fs.NewArtifactProbe().Exists(dir))
	})
}
