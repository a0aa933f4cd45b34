package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/block"
	"github.com/shodgson/commonmark-go/inline"
	"github.com/shodgson/commonmark-go/options"
)

func parse(t *testing.T, source string, opts options.ParseOptions) *ast.Node {
	t.Helper()
	arena := ast.NewArena()
	doc := block.Parse(arena, []byte(source), opts)
	inline.ParseDocument(arena, doc, opts)
	return doc
}

func TestRenderString_WrapsDocumentInXMLProlog(t *testing.T) {
	doc := parse(t, "hi\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<document>")
	assert.Contains(t, out, "</document>")
}

func TestRenderString_HeadingCarriesLevelAttribute(t *testing.T) {
	doc := parse(t, "### Title\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, `<heading level="3">`)
}

func TestRenderString_SelfClosesEmptyElements(t *testing.T) {
	doc := parse(t, "---\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "<thematic_break />")
}
