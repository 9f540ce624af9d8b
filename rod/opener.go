// Package rod opens documentation in a Chrome or Chromium window driven
// through the DevTools protocol.
package rod

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/fwojciec/sensei"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Opener implements sensei.Opener at compile time.
var _ sensei.Opener = (*Opener)(nil)

// Opener launches a visible browser window and navigates it to the target.
// The browser outlives the Opener; it is the user's window once opened.
type Opener struct {
	lookPath func() (string, bool)
	launch   LaunchFunc
}

// LaunchFunc starts the browser binary and returns its DevTools control
// URL together with a function that kills the started process.
type LaunchFunc func(bin string) (controlURL string, kill func(), err error)

// Option configures an Opener.
type Option func(*Opener)

// WithLookPath sets how the browser binary is located.
// Defaults to launcher.LookPath, which searches the usual install locations.
func WithLookPath(fn func() (string, bool)) Option {
	return func(o *Opener) {
		o.lookPath = fn
	}
}

// WithLaunch sets how the browser process is started.
// Defaults to a visible, non-leakless launcher.
func WithLaunch(fn LaunchFunc) Option {
	return func(o *Opener) {
		o.launch = fn
	}
}

// NewOpener creates a new Opener.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		lookPath: launcher.LookPath,
		launch:   launch,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open navigates a new browser window to target. Navigation errors, such
// as a missing local file, are reported as EOPEN. A browser started by a
// failed Open is killed before it returns.
func (o *Opener) Open(ctx context.Context, target string) error {
	bin, has := o.lookPath()
	if !has {
		return sensei.Errorf(sensei.EOPEN, "no Chrome or Chromium browser found")
	}

	u, kill, err := o.launch(bin)
	if err != nil {
		return sensei.Errorf(sensei.EOPEN, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		kill()
		return sensei.Errorf(sensei.EOPEN, "connecting to browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		kill()
		return sensei.Errorf(sensei.EOPEN, "opening tab: %v", err)
	}

	if err := page.Navigate(TargetURL(target)); err != nil {
		kill()
		return sensei.Errorf(sensei.EOPEN, "navigating to %s: %v", target, err)
	}

	return nil
}

// launch starts a visible browser. Leakless is off so the window survives
// this process once navigation succeeds.
func launch(bin string) (string, func(), error) {
	l := launcher.New().
		Bin(bin).
		Headless(false).
		Leakless(false)
	u, err := l.Launch()
	if err != nil {
		return "", nil, err
	}
	return u, l.Kill, nil
}

// TargetURL turns a filesystem path into a file URL. Anything that already
// carries a scheme is returned unchanged.
func TargetURL(target string) string {
	if u, err := url.Parse(target); err == nil && len(u.Scheme) > 1 {
		return target
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}
