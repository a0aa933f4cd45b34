package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/options"
)

// hoistFootnotes detaches every footnote-definition block from wherever it
// was written in the source and reattaches it as a direct child of the
// document, in first-definition order, registering it on the document's
// footnote map under its normalised name (first definition under a given
// name wins; later duplicates are dropped entirely).
//
// Numbering by first *reference* rather than first definition, and
// pruning definitions nothing ever references, both depend on inline
// parsing having resolved every footnote reference; that happens in a
// later pass run by the top-level package once the whole tree has inline
// content, not here.
func hoistFootnotes(doc *ast.Node, defs []*ast.Node, limits options.Limits) {
	document, _ := doc.Value.(*ast.Document)
	if document == nil {
		return
	}
	for i, def := range defs {
		data, _ := def.Value.(*ast.FootnoteDefinitionData)
		if data == nil {
			continue
		}
		name := normalize.Label(data.Name)
		def.Unlink()
		if !document.Footnotes.Insert(name, def) {
			continue
		}
		data.Number = i + 1
		doc.AppendChild(def)
	}
}
