package scanner

import "regexp"

var (
	// reAutolinkURI matches a scheme (2-32 chars, letter then
	// alnum/+/-/.) plus ':' plus any run of non-whitespace,
	// non-'<'/'>' bytes, up to (but not including) a terminating '>'.
	reAutolinkURI = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]{1,31}:[^\s<>\x00-\x1f]*>`)

	reAutolinkEmail = regexp.MustCompile(`^[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*>`)
)

// AutolinkURI matches a scheme+body autolink, starting just after the
// opening '<'. Returns the byte length consumed including the closing '>'.
func AutolinkURI(s []byte) (length int, ok bool) {
	if m := reAutolinkURI.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// AutolinkEmail matches an RFC-shaped local@domain autolink, starting
// just after the opening '<'. Returns the byte length consumed including
// the closing '>'.
func AutolinkEmail(s []byte) (length int, ok bool) {
	if m := reAutolinkEmail.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

var (
	// reBareURL matches a GFM extended-autolink bare URL body (the part
	// after the recognised scheme prefix), up to whitespace or a POP
	// DIRECTIONAL ISOLATE.
	reBareURLBody = regexp.MustCompile(`^[^\s\x{2069}]+`)
	reBareEmail   = regexp.MustCompile(`^[A-Za-z0-9.+_-]+@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+`)
)

// BareAutolinkSchemes are the default (non-relaxed) GFM extended-autolink
// trigger prefixes.
var BareAutolinkSchemes = []string{"www.", "http://", "https://", "ftp://"}

// relaxedSchemePrefix matches "any scheme" per the relaxed-autolink mode
// (Open Question ii, resolved in DESIGN.md): a CommonMark-shaped scheme
// followed by ':'.
var relaxedSchemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]{1,31}:`)

// BareURLBody scans the body of a bare (non-angle-bracketed) autolink
// candidate beginning at s (which already starts with a recognised
// trigger). It returns the raw matched length before CommonMark's
// trailing-punctuation trimming is applied (see TrimAutolinkTrailer).
func BareURLBody(s []byte) (length int, ok bool) {
	m := reBareURLBody.Find(s)
	if m == nil {
		return 0, false
	}
	return len(m), true
}

// BareEmail scans a bare email autolink candidate.
func BareEmail(s []byte) (length int, ok bool) {
	m := reBareEmail.Find(s)
	if m == nil {
		return 0, false
	}
	return len(m), true
}

// RelaxedSchemePrefix reports the length of a relaxed-mode scheme prefix
// (e.g. "irc:") at the start of s, or ok=false.
func RelaxedSchemePrefix(s []byte) (length int, ok bool) {
	if m := relaxedSchemePrefix.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// TrimAutolinkTrailer strips CommonMark-extended-autolink trailing
// punctuation from a matched bare-URL/email span: terminal '.', ',', ';',
// ':', '!', '?', '*', '_', '~', any trailing ']', and an unmatched
// trailing ')' (one whose count exceeds the number of '(' inside the
// span). Returns the new (possibly shorter) length.
func TrimAutolinkTrailer(span []byte) int {
	n := len(span)
	for n > 0 {
		switch span[n-1] {
		case '.', ',', ';', ':', '!', '?', '*', '_', '~':
			n--
			continue
		case ')':
			opens, closes := countParens(span[:n])
			if closes > opens {
				n--
				continue
			}
		case ']':
			n--
			continue
		}
		break
	}
	// A trailing entity reference like "&amp;" without its terminating
	// ';' is not trimmed further; semicolon-trimming above already
	// handles the common case of a bare "&" not being included.
	return n
}

func countParens(s []byte) (opens, closes int) {
	for _, b := range s {
		switch b {
		case '(':
			opens++
		case ')':
			closes++
		}
	}
	return
}
