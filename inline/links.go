package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/scanner"
)

// pushBracket records a literal '[' or '![' as a Text node plus a bracket-
// stack entry marking where a later ']' should look back to.
func (p *Parser) pushBracket(isImage bool) {
	n := p.arena.NewNode(ast.KindText)
	if isImage {
		n.Literal = "!["
	} else {
		n.Literal = "["
	}
	p.parent.AppendChild(n)
	p.brackets = append(p.brackets, &bracket{
		isImage: isImage, node: n, active: true,
		delimiterStackBottom: len(p.delimiters),
	})
}

// handleCloseBracket processes a ']': finds the nearest active bracket and
// attempts, in order, an inline destination, a reference-form lookup, and
// finally the broken-link callback. Returns true if a link/image was
// built (the ']' and bracket markers are consumed); false leaves the ']'
// as literal text and the bracket popped off the stack.
func (p *Parser) handleCloseBracket() bool {
	idx := p.lastActiveBracket()
	if idx < 0 {
		p.emitLiteral("]")
		p.pos++
		return false
	}
	b := p.brackets[idx]

	dest, title, consumed, ok := p.tryInlineLink()
	refLabel := ""
	if !ok {
		dest, title, refLabel, consumed, ok = p.tryReferenceLink(b)
	}
	if !ok && p.opts.BrokenLinkCallback != nil {
		label := p.collectBracketText(b)
		if d, t, cbOK := p.opts.BrokenLinkCallback(label); cbOK {
			dest, title, ok, consumed = d, t, true, 0
		}
	}

	if !ok {
		p.brackets = p.brackets[:idx]
		p.emitLiteral("]")
		p.pos++
		return false
	}

	if p.opts.URLRewriter != nil {
		dest = p.opts.URLRewriter(dest)
	}

	// consumed excludes the ']' at p.pos, so step over it as well.
	p.pos += consumed + 1
	p.buildLinkOrImage(b, dest, title, refLabel)
	p.brackets = p.brackets[:idx]

	if !b.isImage {
		for j := idx - 1; j >= 0; j-- {
			p.brackets[j].active = false
		}
	}
	return true
}

func (p *Parser) lastActiveBracket() int {
	for i := len(p.brackets) - 1; i >= 0; i-- {
		if p.brackets[i].active {
			return i
		}
	}
	return -1
}

// tryInlineLink recognises `(dest "title")` immediately following the `]`
// currently at p.pos (p.pos still points at ']' itself; callers pass the
// scan starting one byte past it).
func (p *Parser) tryInlineLink() (dest, title string, consumed int, ok bool) {
	i := p.pos + 1
	if i >= len(p.src) || p.src[i] != '(' {
		return "", "", 0, false
	}
	i++
	i = skipSpacesNewlines(p.src, i)

	d, dlen, dok := scanner.LinkDestination(p.src[i:])
	if dok {
		i += dlen
	} else if i < len(p.src) && p.src[i] != ')' {
		return "", "", 0, false
	}

	afterDest := i
	j := skipSpacesNewlines(p.src, i)
	t := ""
	if j > afterDest && j < len(p.src) && p.src[j] != ')' {
		if tt, tlen, tok := scanner.LinkTitle(p.src[j:]); tok {
			t = tt
			i = skipSpacesNewlines(p.src, j+tlen)
		}
	} else {
		i = j
	}

	if i >= len(p.src) || p.src[i] != ')' {
		return "", "", 0, false
	}
	// consumed counts only the "(dest title)" span; the caller separately
	// accounts for the ']' that precedes it.
	return scanner.UnescapeBackslashes(d), scanner.UnescapeBackslashes(t), i - p.pos, true
}

func skipSpacesNewlines(s []byte, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

// tryReferenceLink recognises the three reference forms following a `]`:
// full `[text][label]`, collapsed `[text][]`, and shortcut `[text]` (no
// second bracket pair at all).
func (p *Parser) tryReferenceLink(b *bracket) (dest, title, label string, consumed int, ok bool) {
	doc := ast.DocumentOf(b.node)
	if doc == nil {
		return "", "", "", 0, false
	}

	i := p.pos + 1
	if i < len(p.src) && p.src[i] == '[' {
		if closeIdx, lbl, found := scanBracketLabel(p.src, i+1); found {
			if lbl == "" {
				label = p.collectBracketText(b)
			} else {
				label = lbl
			}
			if ref, found := doc.References.Lookup(normalize.Label(label)); found {
				// consumed counts only the "[label]" span; the caller
				// separately accounts for the first ']'.
				return ref.Destination, ref.Title, label, closeIdx - p.pos, true
			}
			return "", "", "", 0, false
		}
	}

	label = p.collectBracketText(b)
	if ref, found := doc.References.Lookup(normalize.Label(label)); found {
		return ref.Destination, ref.Title, label, 0, true
	}
	return "", "", "", 0, false
}

// scanBracketLabel scans a `label]` starting right after the second `[`,
// stopping at the first unescaped `]` with no intervening unescaped `[`.
// found is false if an unescaped `[` comes first or no closing bracket
// follows at all.
func scanBracketLabel(s []byte, start int) (closeIdx int, label string, found bool) {
	i := start
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '[':
			return 0, "", false
		case ']':
			return i, string(s[start:i]), true
		}
		i++
	}
	return 0, "", false
}

// collectBracketText joins the literal text of every inline already
// emitted between the bracket's marker node and the current end of
// p.parent's children, used as the reference label for shortcut/collapsed
// forms and as the synthesised label passed to a broken-link callback.
func (p *Parser) collectBracketText(b *bracket) string {
	var s []byte
	for n := b.node.Next; n != nil; n = n.Next {
		s = append(s, flattenText(n)...)
	}
	return string(s)
}

func flattenText(n *ast.Node) string {
	if n.Kind == ast.KindText || n.Kind == ast.KindCodeSpan {
		return n.Literal
	}
	var s []byte
	for c := n.FirstChild; c != nil; c = c.Next {
		s = append(s, flattenText(c)...)
	}
	return string(s)
}

// buildLinkOrImage wraps every inline between the bracket marker and the
// current tip in a Link or Image node, after first resolving any emphasis
// delimiters scoped to the bracket's content.
func (p *Parser) buildLinkOrImage(b *bracket, dest, title, refLabel string) {
	p.processEmphasis(b.delimiterStackBottom)

	kind := ast.KindLink
	if b.isImage {
		kind = ast.KindImage
	}
	wrap := p.arena.NewNode(kind)
	wrap.Value = &ast.LinkData{Destination: dest, Title: title, ReferenceLabel: refLabel}

	parent := b.node.Parent
	for n := b.node.Next; n != nil; {
		next := n.Next
		n.Unlink()
		wrap.AppendChild(n)
		n = next
	}
	parent.InsertBefore(wrap, b.node.Next)
	b.node.Unlink()

	p.trimDelimitersAbove(b.delimiterStackBottom)
}

// trimDelimitersAbove drops every delimiter-stack entry recorded since the
// bracket watermark: its Text node now lives inside the freshly built
// link/image, and nothing outside that subtree can ever pair with it.
func (p *Parser) trimDelimitersAbove(bottom int) {
	if bottom < len(p.delimiters) {
		p.delimiters = p.delimiters[:bottom]
	}
}
