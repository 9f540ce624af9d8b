// Package fs provides file-based access to the project directory: the
// manifest and locally built documentation.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/sensei"
)

// Ensure ManifestReader implements sensei.VersionReader at compile time.
var _ sensei.VersionReader = (*ManifestReader)(nil)

// ManifestReader reads crate versions from the manifest in a project directory.
type ManifestReader struct {
	baseDir string
}

// NewManifestReader creates a ManifestReader for the project in baseDir.
func NewManifestReader(baseDir string) *ManifestReader {
	return &ManifestReader{baseDir: baseDir}
}

// Path returns the manifest location.
func (r *ManifestReader) Path() string {
	return filepath.Join(r.baseDir, sensei.ManifestName)
}

// ReadVersion returns the version the manifest declares for name.
func (r *ManifestReader) ReadVersion(name string) (string, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		return "", sensei.Errorf(sensei.EMANIFEST, "could not read %s: %v", r.Path(), err)
	}
	return sensei.ParseManifestVersion(string(data), name), nil
}
