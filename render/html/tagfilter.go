package html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

// filteredTags is GFM's fixed tagfilter denylist. Most of these resolve to
// a real atom.Atom (the same lookup table the teacher's model/to_dom.go
// uses to classify DOM element names); the handful that don't (xmp,
// noembed, noframes, plaintext predate the modern atom table) fall back to
// a plain lowercase string comparison.
var filteredTags = map[string]bool{
	"title": true, "textarea": true, "style": true, "xmp": true,
	"iframe": true, "noembed": true, "noframes": true, "script": true,
	"plaintext": true,
}

var reLeadingTagName = regexp.MustCompile(`^</?([A-Za-z][A-Za-z0-9-]*)`)

// filterLeadingTag escapes literal's leading '<' to "&lt;" when it opens
// or closes a denylisted tag name, leaving the rest of the markup (and any
// attributes) untouched.
func filterLeadingTag(literal string) string {
	m := reLeadingTagName.FindStringSubmatch(literal)
	if m == nil {
		return literal
	}
	name := strings.ToLower(m[1])
	if a := atom.Lookup([]byte(name)); a != 0 {
		name = a.String()
	}
	if !filteredTags[name] {
		return literal
	}
	return "&lt;" + literal[1:]
}
