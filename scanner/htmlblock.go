package scanner

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

var (
	reCond1Open  = regexp.MustCompile(`(?i)^<(script|pre|textarea|style)(?:[ \t>]|$)`)
	reCond1Close = regexp.MustCompile(`(?i)</(script|pre|textarea|style)>`)
	reCond6Tag   = regexp.MustCompile(`(?i)^</?([A-Za-z][A-Za-z0-9-]*)(?:[ \t/>]|$)`)
	reCond7Open  = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9-]*((?:\s+[A-Za-z_:][A-Za-z0-9_.:-]*(?:\s*=\s*(?:[^\s"'=<>` + "`" + `]+|'[^']*'|"[^"]*"))?)*)\s*/?>\s*$`)
	reCond7Close = regexp.MustCompile(`^</[A-Za-z][A-Za-z0-9-]*\s*>\s*$`)
)

// cond6BlockTags is the fixed set of block-level tag names recognised by
// HTML-block start condition 6. It is seeded from golang.org/x/net/html's
// atom table (the same dependency the teacher uses to build its DOM
// representation in model/to_dom.go) restricted to the block-level subset
// CommonMark's spec enumerates, plus a couple of names (e.g. "hr") atom
// already carries.
var cond6BlockTags = func() map[atom.Atom]bool {
	names := []string{
		"address", "article", "aside", "base", "basefont", "blockquote",
		"body", "caption", "center", "col", "colgroup", "dd", "details",
		"dialog", "dir", "div", "dl", "dt", "fieldset", "figcaption",
		"figure", "footer", "form", "frame", "frameset", "h1", "h2", "h3",
		"h4", "h5", "h6", "head", "header", "hr", "html", "iframe", "legend",
		"li", "link", "main", "menu", "menuitem", "nav", "noframes", "ol",
		"optgroup", "option", "p", "param", "search", "section", "summary",
		"table", "tbody", "td", "tfoot", "th", "thead", "title", "tr",
		"track", "ul",
	}
	out := make(map[atom.Atom]bool, len(names))
	for _, n := range names {
		if a := atom.Lookup([]byte(n)); a != 0 {
			out[a] = true
		}
	}
	return out
}()

// TagFilterTags is the GFM tagfilter extension's escaped-tag set, a plain
// list of lower-case tag names.
var TagFilterTags = []string{
	"title", "textarea", "style", "xmp", "iframe", "noembed", "noframes",
	"script", "plaintext",
}

// HTMLBlockStart recognises which of the seven HTML-block start conditions
// (if any) a trimmed line (leading ≤3 spaces of indentation already
// stripped) satisfies. Returns the condition number 1..7, or ok=false.
func HTMLBlockStart(line []byte) (blockType int, ok bool) {
	if len(line) == 0 || line[0] != '<' {
		return 0, false
	}
	s := string(line)

	if reCond1Open.MatchString(s) {
		return 1, true
	}
	if strings.HasPrefix(s, "<!--") {
		return 2, true
	}
	if strings.HasPrefix(s, "<?") {
		return 3, true
	}
	if len(s) >= 2 && s[1] == '!' && len(s) >= 3 && isASCIILetter(s[2]) {
		return 4, true
	}
	if strings.HasPrefix(s, "<![CDATA[") {
		return 5, true
	}
	if m := reCond6Tag.FindStringSubmatch(s); m != nil {
		if a := atom.Lookup([]byte(strings.ToLower(m[1]))); a != 0 && cond6BlockTags[a] {
			return 6, true
		}
	}
	if reCond7Open.MatchString(s) || reCond7Close.MatchString(s) {
		return 7, true
	}
	return 0, false
}

// HTMLBlockEnd reports whether line contains the terminator for the given
// HTML-block start condition. Conditions 6 and 7 end at the first blank
// line, which the block parser checks itself rather than calling this
// function.
func HTMLBlockEnd(line []byte, blockType int) bool {
	s := string(line)
	switch blockType {
	case 1:
		return reCond1Close.MatchString(s)
	case 2:
		return strings.Contains(s, "-->")
	case 3:
		return strings.Contains(s, "?>")
	case 4:
		return strings.Contains(s, ">")
	case 5:
		return strings.Contains(s, "]]>")
	default:
		return false
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
