//go:build integration

package rod_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Open_LocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body>docs</body></html>"), 0644))

	err := rod.NewOpener().Open(context.Background(), path)

	require.NoError(t, err)
}

func TestOpener_Open_MissingFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "target", "doc", "serde", "index.html")

	err := rod.NewOpener().Open(context.Background(), path)

	require.Error(t, err)
	assert.Equal(t, sensei.EOPEN, sensei.ErrorCode(err))
}
