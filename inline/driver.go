package inline

import (
	"sort"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/options"
)

// ParseDocument runs the inline parser once over every leaf block in doc
// whose content permits inlines (paragraph, heading, table cell,
// description-list term), in document order, then performs the footnote
// renumbering and pruning pass that block.hoistFootnotes defers to "a
// later pass run by the top-level package": footnote definitions are
// renumbered by first-*reference* order (hoistFootnotes only had
// first-*definition* order available) and any definition nothing
// references is dropped.
func ParseDocument(arena *ast.Arena, doc *ast.Node, opts options.ParseOptions) {
	var footnoteRefs []*ast.Node
	parseLeaves(arena, doc, doc, opts, &footnoteRefs)
	if opts.Extensions.Footnotes {
		renumberFootnotes(doc, footnoteRefs)
	}
}

// parseLeaves walks the block tree rooted at n, running the inline parser
// on every node whose content is inline text rather than child blocks.
// Inline-bearing leaves never have block children, so the recursion stops
// there.
func parseLeaves(arena *ast.Arena, doc, n *ast.Node, opts options.ParseOptions, footnoteRefs *[]*ast.Node) {
	if isInlineBearing(n.Kind) {
		parseLeaf(arena, doc, n, opts, footnoteRefs)
		return
	}
	for c := n.FirstChild; c != nil; c = c.Next {
		parseLeaves(arena, doc, c, opts, footnoteRefs)
	}
}

func isInlineBearing(k ast.Kind) bool {
	switch k {
	case ast.KindParagraph, ast.KindHeading, ast.KindTableCell, ast.KindDescriptionTerm:
		return true
	default:
		return false
	}
}

func parseLeaf(arena *ast.Arena, doc, leaf *ast.Node, opts options.ParseOptions, footnoteRefs *[]*ast.Node) {
	src := leaf.Literal
	leaf.Literal = ""
	p := &Parser{
		arena:        arena,
		opts:         opts,
		doc:          doc,
		src:          []byte(src),
		parent:       leaf,
		footnoteRefs: footnoteRefs,
	}
	p.run()
}

// renumberFootnotes assigns each footnote definition the number of its
// name's first reference, drops definitions that were never referenced,
// and reorders the document's footnote-definition children to match
// numbering order.
func renumberFootnotes(doc *ast.Node, refs []*ast.Node) {
	document, _ := doc.Value.(*ast.Document)
	if document == nil {
		return
	}

	order := make(map[string]int)
	next := 1
	for _, ref := range refs {
		data, ok := ref.Value.(*ast.FootnoteReferenceData)
		if !ok {
			continue
		}
		if _, seen := order[data.Name]; !seen {
			order[data.Name] = next
			next++
		}
		data.Number = order[data.Name]
	}

	var defs []*ast.Node
	for c := doc.FirstChild; c != nil; c = c.Next {
		if c.Kind == ast.KindFootnoteDefinition {
			defs = append(defs, c)
		}
	}

	var survivors []*ast.Node
	for _, c := range defs {
		data, _ := c.Value.(*ast.FootnoteDefinitionData)
		c.Unlink()
		if data == nil {
			continue
		}
		// Reference names are stored normalised; definition names are raw.
		n, referenced := order[normalize.Label(data.Name)]
		if !referenced {
			continue
		}
		data.Number = n
		survivors = append(survivors, c)
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Value.(*ast.FootnoteDefinitionData).Number <
			survivors[j].Value.(*ast.FootnoteDefinitionData).Number
	})
	for _, c := range survivors {
		doc.AppendChild(c)
	}
}
