package normalize

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Slug turns heading text into an anchor id: lowercase, spaces become
// '-', and characters that are neither letters, digits, '-', nor '_' are
// dropped (matching the reference header-ids extension's behaviour).
func Slug(text string) string {
	folded := lower.String(text)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// SlugTable assigns unique ids, resolving collisions by a numeric suffix
// starting at -1 (Open Question i, decided in DESIGN.md: "reference
// implementations number from -1").
type SlugTable struct {
	prefix string
	seen   map[string]int
}

// NewSlugTable constructs a table that prefixes every id with prefix.
func NewSlugTable(prefix string) *SlugTable {
	return &SlugTable{prefix: prefix, seen: make(map[string]int)}
}

// Assign returns a fresh, collision-resolved id for text.
func (t *SlugTable) Assign(text string) string {
	base := t.prefix + Slug(text)
	if base == t.prefix {
		base = t.prefix + "section"
	}
	n, exists := t.seen[base]
	if !exists {
		t.seen[base] = 0
		return base
	}
	n++
	t.seen[base] = n
	return base + "-" + strconv.Itoa(n)
}
