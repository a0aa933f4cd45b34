package commonmark

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
	doc := parse(t, "hello world\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestRenderString_HeadingUsesATXForm(t *testing.T) {
	doc := parse(t, "Title\n=====\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", out)
}

func TestRenderString_EscapesLeadingBlockMarkers(t *testing.T) {
	assert.Equal(t, `\# not a heading`, Esc("# not a heading", true))
	assert.Equal(t, `1\. not a list`, Esc("1. not a list", true))
	assert.Equal(t, "plain text", Esc("plain text", true))
}

func TestRenderString_BulletList(t *testing.T) {
	doc := parse(t, "- one\n- two\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestRenderString_FencedCodeBlockPicksLongerFence(t *testing.T) {
	doc := parse(t, "```\nhas ``` inside\n```\n", options.Default())
	out, err := RenderString(doc, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "````")
}

func TestBacktickFence_ExceedsLongestRun(t *testing.T) {
	assert.Equal(t, "``", backtickFence("no backticks", 2))
	assert.Equal(t, "``", backtickFence("one ` run", 2))
	assert.Equal(t, "```", backtickFence("two `` run", 2))
}
