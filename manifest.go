package sensei

import (
	"strings"
	"unicode"
)

// ManifestName is the file name of the project manifest.
const ManifestName = "Cargo.toml"

// VersionReader looks up the version a project declares for a crate.
type VersionReader interface {
	// ReadVersion returns the declared version of the named crate, or an
	// empty string when the manifest does not mention it.
	// Returns EMANIFEST if the manifest cannot be read.
	ReadVersion(name string) (string, error)
}

// ParseManifestVersion extracts the version declared for name in the
// manifest text. It is a line scan, not a TOML parse: every line that
// contains "<name>=" once whitespace is removed contributes to the result,
// and the concatenation is trimmed to its digits and dots. When more than
// one line matches the result is the trimmed concatenation of all of them.
// Returns "" when no line matches.
func ParseManifestVersion(text, name string) string {
	needle := name + "="

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = stripSpace(line)
		if strings.Contains(line, needle) {
			b.WriteString(line)
		}
	}

	return strings.TrimFunc(b.String(), func(r rune) bool {
		return !isVersionRune(r)
	})
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isVersionRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}
