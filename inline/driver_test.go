package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/block"
	"github.com/shodgson/commonmark-go/options"
)

func parseGFM(t *testing.T, source string) *ast.Node {
	t.Helper()
	opts := options.Default()
	opts.Extensions.Footnotes = true
	arena := ast.NewArena()
	doc := block.Parse(arena, []byte(source), opts)
	ParseDocument(arena, doc, opts)
	return doc
}

func footnoteDefs(doc *ast.Node) []*ast.FootnoteDefinitionData {
	var out []*ast.FootnoteDefinitionData
	for c := doc.FirstChild; c != nil; c = c.Next {
		if c.Kind == ast.KindFootnoteDefinition {
			data, _ := c.Value.(*ast.FootnoteDefinitionData)
			out = append(out, data)
		}
	}
	return out
}

func TestParseDocument_NumbersFootnotesByReferenceOrder(t *testing.T) {
	// "second" is referenced before "first" is, even though "first" is
	// defined first in the source.
	doc := parseGFM(t, "text[^second] and[^first]\n\n[^first]: one\n\n[^second]: two\n")

	defs := footnoteDefs(doc)
	require.Len(t, defs, 2)

	byName := map[string]int{}
	for _, d := range defs {
		byName[d.Name] = d.Number
	}
	assert.Equal(t, 1, byName["second"])
	assert.Equal(t, 2, byName["first"])
}

func TestParseDocument_PrunesUnreferencedFootnotes(t *testing.T) {
	doc := parseGFM(t, "text[^used]\n\n[^used]: one\n\n[^unused]: two\n")

	defs := footnoteDefs(doc)
	require.Len(t, defs, 1)
	assert.Equal(t, "used", defs[0].Name)
}

func TestParseDocument_NoFootnotesExtension_LeavesLeafTextParsed(t *testing.T) {
	arena := ast.NewArena()
	doc := block.Parse(arena, []byte("*hi*\n"), options.Default())
	ParseDocument(arena, doc, options.Default())

	para := doc.FirstChild
	require.NotNil(t, para)
	require.NotNil(t, para.FirstChild)
	assert.Equal(t, ast.KindEmphasis, para.FirstChild.Kind)
}
