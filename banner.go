package sensei

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPhrases returns the phrases that frame the success banner.
func DefaultPhrases() []string {
	return []string{"幸運を", "よく学ぶ", "良い読書", "良書"}
}

// Banner renders the message shown after documentation was opened.
type Banner struct {
	Phrases []string

	// Pick returns a number in [0, n). Defaults to rand.IntN.
	Pick func(n int) int
}

// NewBanner returns a Banner with the default phrases.
func NewBanner() *Banner {
	return &Banner{Phrases: DefaultPhrases()}
}

// Render returns the banner for q. The query's warning, if any, is
// appended on its own line.
func (b *Banner) Render(q *Query) string {
	var version string
	if q.Version != "" {
		version = q.Version + " "
	}

	var title string
	if q.Source.Kind == SourceStd {
		title = "The Standard Library " + version
	} else {
		title = "The Book Of " + Capitalize(q.Source.Name) + " " + version
	}

	var sb strings.Builder
	sb.WriteString(b.phrase())
	sb.WriteString(" ||| ")
	sb.WriteString(title)
	sb.WriteString("||| ")
	sb.WriteString(b.phrase())
	if q.Warning != "" {
		sb.WriteString("\n")
		sb.WriteString(q.Warning)
	}
	return sb.String()
}

func (b *Banner) phrase() string {
	if len(b.Phrases) == 0 {
		return ""
	}
	pick := b.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return b.Phrases[pick(len(b.Phrases))]
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
