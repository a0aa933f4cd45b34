// Package normalize implements the label-normalisation rule reference
// links and footnotes share: Unicode default case folding, followed by
// whitespace-run collapsing and trimming, per spec §9's design note.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Label case-folds s (Unicode default case folding, simple+common+full
// mappings, via golang.org/x/text/cases — the maintained library for this
// exact operation, per spec §9), collapses runs of whitespace to a single
// space, and trims leading/trailing whitespace. Two labels that are
// "the same" per CommonMark's reference-matching rule normalise to an
// identical string.
func Label(s string) string {
	folded := folder.String(s)
	var b strings.Builder
	b.Grow(len(folded))
	lastWasSpace := false
	for _, r := range folded {
		if unicode.IsSpace(r) {
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
