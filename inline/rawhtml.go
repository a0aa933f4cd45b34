package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryRawHTML recognises an inline HTML tag, comment, processing
// instruction, declaration, or CDATA section starting at p.pos == '<'.
// The tag-filter extension's escaping of certain block-forming tag names
// happens at render time, not here: the raw markup is kept verbatim.
func (p *Parser) tryRawHTML() bool {
	n, ok := scanner.RawHTMLInline(p.src[p.pos:])
	if !ok {
		return false
	}
	node := p.arena.NewNode(ast.KindRawHTML)
	node.Literal = string(p.src[p.pos : p.pos+n])
	p.parent.AppendChild(node)
	p.pos += n
	return true
}
