package mock

import "github.com/fwojciec/sensei"

var _ sensei.VersionReader = (*VersionReader)(nil)

// VersionReader is a mock implementation of sensei.VersionReader.
type VersionReader struct {
	ReadVersionFn func(name string) (string, error)
}

func (r *VersionReader) ReadVersion(name string) (string, error) {
	return r.ReadVersionFn(name)
}
