package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryFootnoteReference recognises `[^label]` starting at p.pos == '[',
// gated by Extensions.Footnotes, with no definition lookup performed yet:
// the definition may appear later in the source. Renumbering by first-
// reference order and pruning definitions nothing references both happen
// in the driver's post-pass, once every block's inlines have been walked.
func (p *Parser) tryFootnoteReference() bool {
	if !p.opts.Extensions.Footnotes {
		return false
	}
	label, n, ok := scanner.FootnoteReferenceStart(p.src[p.pos:])
	if !ok {
		return false
	}
	if p.footnoteDepth >= p.opts.Limits.MaxFootnoteNestingDepth {
		return false
	}

	name := normalize.Label(label)
	ref := p.arena.NewNode(ast.KindFootnoteReference)
	ref.Value = &ast.FootnoteReferenceData{
		Name:         name,
		BackrefIndex: p.countExistingRefs(name) + 1,
	}
	p.parent.AppendChild(ref)
	if p.footnoteRefs != nil {
		*p.footnoteRefs = append(*p.footnoteRefs, ref)
	}
	p.pos += n
	return true
}

func (p *Parser) countExistingRefs(name string) int {
	if p.footnoteRefs == nil {
		return 0
	}
	n := 0
	for _, r := range *p.footnoteRefs {
		if d, ok := r.Value.(*ast.FootnoteReferenceData); ok && d.Name == name {
			n++
		}
	}
	return n
}
