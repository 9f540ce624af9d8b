package sh_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/sh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("reports success", func(t *testing.T) {
		t.Parallel()

		b := sh.NewBuilder(t.TempDir(), sh.WithCommand("true"))

		outcome, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.True(t, outcome.Success())
	})

	t.Run("reports exit status of failed build", func(t *testing.T) {
		t.Parallel()

		b := sh.NewBuilder(t.TempDir(), sh.WithCommand("exit 101"))

		outcome, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.False(t, outcome.Success())
		assert.Equal(t, 101, outcome.ExitStatus)
	})

	t.Run("runs in project directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		b := sh.NewBuilder(dir, sh.WithCommand("mkdir -p target/doc/app && echo ok > target/doc/app/index.html"))

		outcome, err := b.Build(context.Background())

		require.NoError(t, err)
		require.True(t, outcome.Success())
		_, err = os.Stat(filepath.Join(dir, "target", "doc", "app", "index.html"))
		assert.NoError(t, err)
	})

	t.Run("forwards output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		b := sh.NewBuilder(t.TempDir(),
			sh.WithCommand("echo documenting; echo warning >&2"),
			sh.WithOutput(stdout, stderr),
		)

		_, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "documenting\n", stdout.String())
		assert.Equal(t, "warning\n", stderr.String())
	})

	t.Run("passes environment", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		b := sh.NewBuilder(t.TempDir(),
			sh.WithCommand(`echo "$CARGO_TARGET"`),
			sh.WithEnv([]string{"CARGO_TARGET=wasm"}),
			sh.WithOutput(stdout, &bytes.Buffer{}),
		)

		_, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "wasm\n", stdout.String())
	})

	t.Run("rejects unparsable command", func(t *testing.T) {
		t.Parallel()

		b := sh.NewBuilder(t.TempDir(), sh.WithCommand(`echo "unterminated`))

		outcome, err := b.Build(context.Background())

		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.Equal(t, sensei.EINVALID, sensei.ErrorCode(err))
	})
}

func TestNewBuilder_DefaultCommand(t *testing.T) {
	t.Parallel()

	b := sh.NewBuilder(t.TempDir())

	assert.Equal(t, sensei.DefaultBuildCommand, b.Command())
}
