// Package navigate opens the documentation for a resolved query. For local
// documentation it recovers from a missing build by running the
// documentation build once and retrying.
package navigate

import (
	"context"

	"github.com/fwojciec/sensei"
)

// Navigator resolves a query to a URL and opens it.
type Navigator struct {
	Resolver *sensei.Resolver
	Opener   sensei.Opener
	Probe    sensei.ArtifactProbe
	Builder  sensei.Builder

	// Checker, if set, verifies remote URLs before they are opened.
	Checker sensei.URLChecker
}

// Outcome describes a successful navigation.
type Outcome struct {
	URL string

	// Rebuilt reports whether local documentation was built on the way.
	Rebuilt bool
}

// ProgressEvent reports a step of the recovery path.
type ProgressEvent struct {
	Type ProgressType
	URL  string
	Err  error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressOpenFailed is sent when the first open attempt fails.
	ProgressOpenFailed ProgressType = iota
	// ProgressBuilding is sent before the documentation build starts.
	ProgressBuilding
	// ProgressRetrying is sent before the single retry after a build.
	ProgressRetrying
)

// ProgressFunc is a callback for reporting navigation progress.
type ProgressFunc func(event ProgressEvent)

// Navigate opens the documentation for q.
//
// Only local sources recover from a failed open: when the documentation
// artifact is missing it is built once and opened once more. There is never
// a second build. Errors carry the codes EOPEN, EBUILD, ENOTFOUND or EINVALID.
func (n *Navigator) Navigate(ctx context.Context, q *sensei.Query, progress ProgressFunc) (*Outcome, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	url := n.Resolver.Resolve(q)

	if q.Source.Kind != sensei.SourceLocal && n.Checker != nil {
		if err := n.Checker.Check(ctx, url); err != nil {
			return nil, err
		}
	}

	err := n.Opener.Open(ctx, url)
	if err == nil {
		return &Outcome{URL: url}, nil
	}
	if q.Source.Kind != sensei.SourceLocal {
		return nil, sensei.Errorf(sensei.EOPEN, "could not navigate to %s: %s", url, reason(err))
	}
	progress(ProgressEvent{Type: ProgressOpenFailed, URL: url, Err: err})

	if n.Probe.Exists(url) {
		return nil, sensei.Errorf(sensei.EOPEN, "could not navigate to %s: %s", url, reason(err))
	}

	return n.rebuildAndRetry(ctx, q, progress)
}

func (n *Navigator) rebuildAndRetry(ctx context.Context, q *sensei.Query, progress ProgressFunc) (*Outcome, error) {
	progress(ProgressEvent{Type: ProgressBuilding})

	outcome, err := n.Builder.Build(ctx)
	if err != nil {
		if sensei.ErrorCode(err) == sensei.EINVALID {
			return nil, err
		}
		return nil, sensei.Errorf(sensei.EBUILD, "documentation build could not run: %s", reason(err))
	}
	if !outcome.Success() {
		return nil, sensei.Errorf(sensei.EBUILD, "documentation build failed with exit status %d", outcome.ExitStatus)
	}

	url := n.Resolver.Resolve(q)
	progress(ProgressEvent{Type: ProgressRetrying, URL: url})

	if err := n.Opener.Open(ctx, url); err != nil {
		if !n.Probe.Exists(url) {
			return nil, sensei.Errorf(sensei.ENOTFOUND, "documentation for %q is not available locally", q.Source.Name)
		}
		return nil, sensei.Errorf(sensei.EOPEN, "could not navigate to %s: %s", url, reason(err))
	}

	return &Outcome{URL: url, Rebuilt: true}, nil
}

// reason returns the human-readable part of err.
func reason(err error) string {
	if sensei.ErrorCode(err) == sensei.EINTERNAL {
		return err.Error()
	}
	return sensei.ErrorMessage(err)
}
