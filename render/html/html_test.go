package html

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

func TestRenderString_Paragraph(t *testing.T) {
	doc := parse(t, "hi there\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p>hi there</p>\n", out)
}

func TestRenderString_TightListOmitsParagraphWrapper(t *testing.T) {
	doc := parse(t, "- one\n- two\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.NotContains(t, out, "<p>")
	assert.Contains(t, out, "<li>one</li>")
}

func TestRenderString_LooseListKeepsParagraphWrapper(t *testing.T) {
	doc := parse(t, "- one\n\n- two\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "<p>one</p>")
}

func TestRenderString_HeaderIDs(t *testing.T) {
	doc := parse(t, "# Hello World\n", options.Default())
	opts := options.DefaultRenderOptions()
	opts.HeaderIDs = true
	out, err := RenderString(doc, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `id="hello-world"`)
}

func TestRenderString_HeaderIDsDedupe(t *testing.T) {
	doc := parse(t, "# dup\n\n# dup\n", options.Default())
	opts := options.DefaultRenderOptions()
	opts.HeaderIDs = true
	out, err := RenderString(doc, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `id="dup"`)
	assert.Contains(t, out, `id="dup-1"`)
}

func TestRenderString_DangerousURLIsBlanked(t *testing.T) {
	doc := parse(t, "[click](javascript:alert(1))\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}

func TestRenderString_UnsafeAllowsRawHTML(t *testing.T) {
	doc := parse(t, "<div>raw</div>\n", options.Default())

	safe, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, safe, "<!-- raw HTML omitted -->")

	opts := options.DefaultRenderOptions()
	opts.Unsafe = true
	unsafeOut, err := RenderString(doc, opts)
	require.NoError(t, err)
	assert.Contains(t, unsafeOut, "<div>raw</div>")
}

func TestRenderString_TagfilterEscapesDenylistedTag(t *testing.T) {
	opts := options.Default()
	opts.Extensions.Tagfilter = true
	doc := parse(t, "<script>alert(1)</script>\n", opts)

	renderOpts := options.DefaultRenderOptions()
	renderOpts.Unsafe = true
	renderOpts.Tagfilter = true
	out, err := RenderString(doc, renderOpts)
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;script>")
}

func TestRenderString_TableHasTheadAndTbody(t *testing.T) {
	opts := options.Default()
	opts.Extensions.Table = true
	doc := parse(t, "| a | b |\n|---|---|\n| 1 | 2 |\n", opts)
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "<thead>")
	assert.Contains(t, out, "<tbody>")
}

func TestRenderString_TableHeaderOnlyOmitsTbody(t *testing.T) {
	opts := options.Default()
	opts.Extensions.Table = true
	doc := parse(t, "| a | b |\n|---|---|\n", opts)
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "<thead>")
	assert.NotContains(t, out, "<tbody>")
}
