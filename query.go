package sensei

import (
	"fmt"
	"strings"
)

// StdName is the crate name that selects the standard library documentation.
const StdName = "std"

// LocalWarning is attached to local queries that ask for a version or a search.
const LocalWarning = "Versioning and querying is not available with local crates."

// SourceKind identifies where a crate's documentation lives.
type SourceKind int

const (
	// SourceRegistry is the public documentation registry (docs.rs).
	SourceRegistry SourceKind = iota
	// SourceStd is the standard library documentation.
	SourceStd
	// SourceLocal is documentation built on disk by the build tool.
	SourceLocal
)

// SourceKinds lists every SourceKind.
var SourceKinds = []SourceKind{SourceRegistry, SourceStd, SourceLocal}

func (k SourceKind) String() string {
	switch k {
	case SourceRegistry:
		return "registry"
	case SourceStd:
		return "std"
	case SourceLocal:
		return "local"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Source is the documentation source of a crate.
type Source struct {
	Kind SourceKind
	Name string
}

// Intent is what the caller asked for, before resolution.
type Intent struct {
	Name    string
	Version string
	Search  string
	Local   bool
}

// Query is a resolved documentation request. Empty Version, Search and
// Warning mean unset. A Query is not modified after NewQuery returns it.
type Query struct {
	Source  Source
	Version string
	Search  string

	// Warning is set only for local sources that were given a version or
	// a search, which local documentation cannot honor.
	Warning string
}

// NormalizeName returns the canonical form of a crate name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// NewQuery resolves intent into a Query.
func NewQuery(intent Intent) *Query {
	name := NormalizeName(intent.Name)

	q := &Query{
		Version: intent.Version,
		Search:  intent.Search,
	}

	switch {
	case name == StdName:
		q.Source = Source{Kind: SourceStd, Name: name}
	case intent.Local:
		q.Source = Source{Kind: SourceLocal, Name: name}
		if q.Version != "" || q.Search != "" {
			q.Warning = LocalWarning
		}
	default:
		q.Source = Source{Kind: SourceRegistry, Name: name}
	}

	return q
}
