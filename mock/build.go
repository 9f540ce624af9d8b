package mock

import (
	"context"

	"github.com/fwojciec/sensei"
)

var _ sensei.Builder = (*Builder)(nil)

// Builder is a mock implementation of sensei.Builder.
type Builder struct {
	BuildFn func(ctx context.Context) (*sensei.BuildOutcome, error)
}

func (b *Builder) Build(ctx context.Context) (*sensei.BuildOutcome, error) {
	return b.BuildFn(ctx)
}

var _ sensei.ArtifactProbe = (*ArtifactProbe)(nil)

// ArtifactProbe is a mock implementation of sensei.ArtifactProbe.
type ArtifactProbe struct {
	ExistsFn func(path string) bool
}

func (p *ArtifactProbe) Exists(path string) bool {
	return p.ExistsFn(path)
}
