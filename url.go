package sensei

import (
	"fmt"
	"path/filepath"
)

// Default documentation hosts.
const (
	DefaultRegistryHost = "https://docs.rs"
	DefaultStdHost      = "https://doc.rust-lang.org"
)

// Hosts holds the base URLs of the remote documentation services.
type Hosts struct {
	Registry string
	Std      string
}

// DefaultHosts returns the public docs.rs and doc.rust-lang.org hosts.
func DefaultHosts() Hosts {
	return Hosts{
		Registry: DefaultRegistryHost,
		Std:      DefaultStdHost,
	}
}

// LocalDocPath returns where the build tool writes the documentation of
// the named crate under baseDir.
func LocalDocPath(baseDir, name string) string {
	return filepath.Join(baseDir, "target", "doc", name, "index.html")
}

// Resolver maps a Query to the URL of its documentation.
type Resolver struct {
	Hosts Hosts

	// BaseDir is the project directory local documentation is built in.
	BaseDir string
}

// Resolve returns the documentation URL for q.
//
// The search string is appended verbatim. Searches containing characters
// that need percent-encoding produce a malformed URL.
func (r *Resolver) Resolve(q *Query) string {
	var url string
	switch q.Source.Kind {
	case SourceLocal:
		return LocalDocPath(r.BaseDir, q.Source.Name)
	case SourceStd:
		if q.Version != "" {
			url = fmt.Sprintf("%s/%s/std/", r.Hosts.Std, q.Version)
		} else {
			url = fmt.Sprintf("%s/stable/std/", r.Hosts.Std)
		}
	case SourceRegistry:
		if q.Version != "" {
			url = fmt.Sprintf("%s/%s/%s", r.Hosts.Registry, q.Source.Name, q.Version)
		} else {
			url = fmt.Sprintf("%s/%s", r.Hosts.Registry, q.Source.Name)
		}
	default:
		panic(fmt.Sprintf("sensei: unhandled source kind %v", q.Source.Kind))
	}

	if q.Search != "" {
		url += "?search=" + q.Search
	}
	return url
}
