package scanner

import "regexp"

// These scanners operate on a byte slice beginning at '<' and return the
// total match length (including the leading '<' and trailing '>'), for use
// by the inline parser's raw-HTML recognition.
var (
	reOpenTag    = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][A-Za-z0-9_.:-]*(?:\s*=\s*(?:[^\s"'=<>` + "`" + `]+|'[^']*'|"[^"]*"))?)*\s*/?>`)
	reCloseTag   = regexp.MustCompile(`^</[A-Za-z][A-Za-z0-9-]*\s*>`)
	reComment    = regexp.MustCompile(`^<!--(?:[^-]|-[^-]|--[^>])*-->`)
	reProcInst   = regexp.MustCompile(`(?s)^<\?.*?\?>`)
	reDeclaration = regexp.MustCompile(`^<![A-Za-z]+\s[^>]*>`)
	reCDATA      = regexp.MustCompile(`(?s)^<!\[CDATA\[.*?\]\]>`)
)

// HTMLTag matches an open or close tag starting at s[0]=='<'. Returns the
// matched length.
func HTMLTag(s []byte) (length int, ok bool) {
	if m := reOpenTag.Find(s); m != nil {
		return len(m), true
	}
	if m := reCloseTag.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// HTMLComment matches an HTML comment starting at s[0]=='<'.
func HTMLComment(s []byte) (length int, ok bool) {
	if m := reComment.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// HTMLProcessingInstruction matches `<? ... ?>`.
func HTMLProcessingInstruction(s []byte) (length int, ok bool) {
	if m := reProcInst.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// HTMLDeclaration matches `<!LETTER ... >`.
func HTMLDeclaration(s []byte) (length int, ok bool) {
	if m := reDeclaration.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// HTMLCDATA matches `<![CDATA[ ... ]]>`.
func HTMLCDATA(s []byte) (length int, ok bool) {
	if m := reCDATA.Find(s); m != nil {
		return len(m), true
	}
	return 0, false
}

// RawHTMLInline tries all five inline raw-HTML forms in the order the
// spec lists them and returns the first match.
func RawHTMLInline(s []byte) (length int, ok bool) {
	if n, ok := HTMLComment(s); ok {
		return n, true
	}
	if n, ok := HTMLProcessingInstruction(s); ok {
		return n, true
	}
	if n, ok := HTMLDeclaration(s); ok {
		return n, true
	}
	if n, ok := HTMLCDATA(s); ok {
		return n, true
	}
	if n, ok := HTMLTag(s); ok {
		return n, true
	}
	return 0, false
}
