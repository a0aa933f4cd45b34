package scanner

import "regexp"

var reShortcode = regexp.MustCompile(`^:([A-Za-z0-9+_-]+):`)

// ShortcodeBody matches a `:name:` emoji shortcode starting at s[0]==':'.
// Returns the name (without colons) and the total matched length.
func ShortcodeBody(s []byte) (name string, length int, ok bool) {
	m := reShortcode.FindSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return string(m[1]), len(m[0]), true
}

var reWikiLinkOpen = regexp.MustCompile(`^\[\[`)
var reWikiLinkClose = regexp.MustCompile(`^\]\]`)

// WikiLinkOpen/WikiLinkClose recognise the '[[' and ']]' wiki-link
// delimiters.
func WikiLinkOpen(s []byte) bool  { return reWikiLinkOpen.Match(s) }
func WikiLinkClose(s []byte) bool { return reWikiLinkClose.Match(s) }
