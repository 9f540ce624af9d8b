// Package sh runs the documentation build command through an embedded
// POSIX shell interpreter, so the command can be configured as a single
// string and behaves the same on every platform.
package sh

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/sensei"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultCommand is the build command used when none is configured.
const DefaultCommand = sensei.DefaultBuildCommand

// Ensure Builder implements sensei.Builder at compile time.
var _ sensei.Builder = (*Builder)(nil)

// Builder runs a shell command that writes documentation into the project directory.
type Builder struct {
	dir     string
	command string
	env     []string
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Builder.
type Option func(*Builder)

// WithCommand sets the shell command to run.
// Defaults to DefaultCommand if not specified.
func WithCommand(command string) Option {
	return func(b *Builder) {
		b.command = command
	}
}

// WithOutput sets where the command's output goes.
// Defaults to discarding it.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(b *Builder) {
		b.stdout = stdout
		b.stderr = stderr
	}
}

// WithEnv replaces the environment of the command.
// Defaults to the environment of the current process.
func WithEnv(env []string) Option {
	return func(b *Builder) {
		b.env = env
	}
}

// NewBuilder creates a Builder that runs in dir.
func NewBuilder(dir string, opts ...Option) *Builder {
	b := &Builder{
		dir:     dir,
		command: DefaultCommand,
		env:     os.Environ(),
		stdout:  io.Discard,
		stderr:  io.Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Command returns the shell command the builder runs.
func (b *Builder) Command() string {
	return b.command
}

// Build runs the command and waits for it to exit. There is no timeout;
// the command runs until it exits or ctx is canceled.
func (b *Builder) Build(ctx context.Context) (*sensei.BuildOutcome, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(b.command), "build")
	if err != nil {
		return nil, sensei.Errorf(sensei.EINVALID, "invalid build command %q: %v", b.command, err)
	}

	runner, err := interp.New(
		interp.Dir(b.dir),
		interp.Env(expand.ListEnviron(b.env...)),
		interp.StdIO(nil, b.stdout, b.stderr),
	)
	if err != nil {
		return nil, sensei.Errorf(sensei.EBUILD, "could not start %q: %v", b.command, err)
	}

	err = runner.Run(ctx, prog)
	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &sensei.BuildOutcome{ExitStatus: int(exitStatus)}, nil
		}
		return nil, sensei.Errorf(sensei.EBUILD, "could not run %q: %v", b.command, err)
	}

	return &sensei.BuildOutcome{ExitStatus: 0}, nil
}
