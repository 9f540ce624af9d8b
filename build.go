package sensei

import "context"

// DefaultBuildCommand builds the documentation of the current project.
const DefaultBuildCommand = "cargo doc"

// BuildOutcome is the result of a documentation build that ran to completion.
type BuildOutcome struct {
	ExitStatus int
}

// Success reports whether the build exited cleanly.
func (o *BuildOutcome) Success() bool {
	return o.ExitStatus == 0
}

// Builder generates local documentation.
type Builder interface {
	// Build runs the documentation build and blocks until it exits.
	// An error means the build could not be started at all; a build that
	// ran and failed is reported through BuildOutcome.
	Build(ctx context.Context) (*BuildOutcome, error)
}

// ArtifactProbe checks for locally built documentation.
type ArtifactProbe interface {
	Exists(path string) bool
}
