package scanner

import (
	"regexp"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
)

var reAlertStart = regexp.MustCompile(`(?i)^\[!(note|tip|important|warning|caution)\](?:[ \t]+(.*))?$`)

// AlertStart recognises a GitHub-style alert marker immediately following
// a block quote's "> " prefix: `[!KIND]` optionally followed by a custom
// title on the same line.
func AlertStart(content []byte) (kind ast.AlertKind, title string, ok bool) {
	m := reAlertStart.FindSubmatch(content)
	if m == nil {
		return 0, "", false
	}
	switch strings.ToLower(string(m[1])) {
	case "note":
		kind = ast.AlertNote
	case "tip":
		kind = ast.AlertTip
	case "important":
		kind = ast.AlertImportant
	case "warning":
		kind = ast.AlertWarning
	case "caution":
		kind = ast.AlertCaution
	}
	return kind, string(m[2]), true
}
