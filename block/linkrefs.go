package block

import (
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/scanner"
)

// finalizeLinkReferenceDefinitions walks the finished tree and strips one
// or more leading link reference definitions from every paragraph,
// registering each on the document's reference map. A paragraph entirely
// consumed by definitions is removed; one with trailing text is kept with
// just that text.
func finalizeLinkReferenceDefinitions(doc *ast.Node) {
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		c := n.FirstChild
		for c != nil {
			next := c.Next
			if c.Kind == ast.KindParagraph {
				extractLinkReferenceDefinitions(doc, c)
			} else {
				walk(c)
			}
			c = next
		}
	}
	walk(doc)
}

func extractLinkReferenceDefinitions(doc *ast.Node, p *ast.Node) {
	document, _ := doc.Value.(*ast.Document)
	if document == nil {
		return
	}
	text := p.Literal
	for {
		label, dest, title, rest, ok := parseLeadingReferenceDefinition(text)
		if !ok {
			break
		}
		document.References.Insert(normalize.Label(label), ast.Reference{
			Destination: scanner.UnescapeBackslashes(dest),
			Title:       scanner.UnescapeBackslashes(title),
		})
		text = rest
	}
	if strings.TrimSpace(text) == "" {
		p.Unlink()
		return
	}
	p.Literal = strings.TrimLeft(text, " \t\n")
}

// parseLeadingReferenceDefinition recognises one `[label]: dest "title"`
// definition at the very start of text, returning the remainder of text
// after it (including its terminating newline) on success.
func parseLeadingReferenceDefinition(text string) (label, dest, title, rest string, ok bool) {
	s := text
	i := 0
	for i < len(s) && i < 3 && s[i] == ' ' {
		i++
	}
	if i >= len(s) || s[i] != '[' {
		return "", "", "", "", false
	}
	i++
	start := i
	depth := 0
	closed := false
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			if depth == 0 {
				closed = true
			} else {
				depth--
			}
		}
		if closed {
			break
		}
		i++
	}
	if !closed {
		return "", "", "", "", false
	}
	label = s[start:i]
	if strings.TrimSpace(label) == "" {
		return "", "", "", "", false
	}
	i++ // skip ']'
	if i >= len(s) || s[i] != ':' {
		return "", "", "", "", false
	}
	i++
	i = skipLinkWhitespace(s, i)

	destBytes, destLen, destOK := scanner.LinkDestination([]byte(s[i:]))
	if !destOK {
		return "", "", "", "", false
	}
	dest = destBytes
	i += destLen
	afterDest := i

	j := skipLinkWhitespace(s, i)
	if j > i && j < len(s) {
		if t, tlen, tok := scanner.LinkTitle([]byte(s[j:])); tok {
			candidateEnd := j + tlen
			if lineEndsAt(s, candidateEnd) {
				title = t
				i = candidateEnd
			} else {
				i = afterDest
			}
		} else {
			i = afterDest
		}
	} else {
		i = afterDest
	}

	if !lineEndsAt(s, i) {
		return "", "", "", "", false
	}
	i = skipToLineEnd(s, i)
	return label, dest, title, s[i:], true
}

func skipLinkWhitespace(s string, i int) int {
	sawNewline := false
	for i < len(s) {
		switch s[i] {
		case ' ', '\t':
			i++
		case '\n':
			if sawNewline {
				return i
			}
			sawNewline = true
			i++
		default:
			return i
		}
	}
	return i
}

func lineEndsAt(s string, i int) bool {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i >= len(s) || s[i] == '\n'
}

func skipToLineEnd(s string, i int) int {
	for i < len(s) && s[i] != '\n' {
		i++
	}
	if i < len(s) {
		i++
	}
	return i
}
