package inline

import "github.com/shodgson/commonmark-go/ast"

// tryWikiLink recognises `[[target]]` and `[[target|title]]` starting at
// p.pos == '[' with a second '[' immediately following, gated by
// Extensions.WikiLinks. Tweaks.WikiLinkTitleAfterPipe controls which side
// of the '|' is the link target versus the display title; some wiki
// dialects write `[[title|target]]` instead.
func (p *Parser) tryWikiLink() bool {
	if !p.opts.Extensions.WikiLinks {
		return false
	}
	if p.pos+1 >= len(p.src) || p.src[p.pos+1] != '[' {
		return false
	}
	start := p.pos + 2
	i := start
	for i < len(p.src) {
		if p.src[i] == '\n' {
			return false
		}
		if p.src[i] == ']' && i+1 < len(p.src) && p.src[i+1] == ']' {
			body := string(p.src[start:i])
			target, title := splitWikiLinkBody(body, p.opts.Tweaks.WikiLinkTitleAfterPipe)
			p.appendWikiLink(target, title)
			p.pos = i + 2
			return true
		}
		i++
	}
	return false
}

func splitWikiLinkBody(body string, titleAfterPipe bool) (target, title string) {
	for i := 0; i < len(body); i++ {
		if body[i] == '|' {
			left, right := body[:i], body[i+1:]
			if titleAfterPipe {
				return left, right
			}
			return right, left
		}
	}
	return body, body
}

func (p *Parser) appendWikiLink(target, title string) {
	n := p.arena.NewNode(ast.KindWikiLink)
	n.Value = &ast.WikiLinkData{Target: target}
	txt := p.arena.NewNode(ast.KindText)
	txt.Literal = title
	n.AppendChild(txt)
	p.parent.AppendChild(n)
}
