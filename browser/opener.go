// Package browser opens documentation with the operating system's default
// handler: open on macOS, rundll32 on Windows and xdg-open elsewhere.
//
// rundll32 exits cleanly even when a local file is missing, so on Windows
// local targets are checked before the handler runs.
package browser

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/sensei"
)

// Ensure Opener implements sensei.Opener at compile time.
var _ sensei.Opener = (*Opener)(nil)

// Opener runs the platform's URL handler and waits for it to report back.
type Opener struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

// Option configures an Opener.
type Option func(*Opener)

// WithGOOS sets the platform whose handler is used.
// Defaults to runtime.GOOS.
func WithGOOS(goos string) Option {
	return func(o *Opener) {
		o.goos = goos
	}
}

// WithRunner sets how the handler command is executed.
func WithRunner(run func(ctx context.Context, name string, args ...string) error) Option {
	return func(o *Opener) {
		o.run = run
	}
}

// NewOpener creates a new Opener.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		goos: runtime.GOOS,
		run:  runCommand,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open hands target to the platform handler. A handler that exits with a
// failure status, for example because a local file does not exist, is
// reported as EOPEN.
func (o *Opener) Open(ctx context.Context, target string) error {
	if o.goos == "windows" && isLocal(target) {
		if _, err := os.Stat(target); err != nil {
			return sensei.Errorf(sensei.EOPEN, "%s: %v", target, err)
		}
	}

	name, args := Command(o.goos, target)
	if err := o.run(ctx, name, args...); err != nil {
		return sensei.Errorf(sensei.EOPEN, "%s %s: %v", name, target, err)
	}
	return nil
}

// Command returns the handler command line for goos.
func Command(goos, target string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// isLocal reports whether target is a filesystem path. Single-letter
// schemes are drive letters.
func isLocal(target string) bool {
	u, err := url.Parse(target)
	return err != nil || len(u.Scheme) <= 1
}

func runCommand(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return &handlerError{err: err, msg: msg}
		}
		return err
	}
	return nil
}

type handlerError struct {
	err error
	msg string
}

func (e *handlerError) Error() string { return e.err.Error() + ": " + e.msg }

func (e *handlerError) Unwrap() error { return e.err }
