package fs

import (
	"os"

	"github.com/fwojciec/sensei"
)

// Ensure ArtifactProbe implements sensei.ArtifactProbe at compile time.
var _ sensei.ArtifactProbe = (*ArtifactProbe)(nil)

// ArtifactProbe checks the filesystem for built documentation.
type ArtifactProbe struct{}

// NewArtifactProbe creates a new ArtifactProbe.
func NewArtifactProbe() *ArtifactProbe {
	return &ArtifactProbe{}
}

// Exists reports whether path is an existing regular file.
func (p *ArtifactProbe) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
