package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/options"
)

func TestMarkdownToHTML_Basics(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"paragraph", "hello world\n", "<p>hello world</p>\n"},
		{"emphasis", "*a* and **b**\n", "<p><em>a</em> and <strong>b</strong></p>\n"},
		{"atx heading", "## Title\n", "<h2>Title</h2>\n"},
		{"fenced code", "```\ncode\n```\n", "<pre><code>code\n</code></pre>\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := MarkdownToHTML([]byte(c.source), options.Default(), options.DefaultRenderOptions())
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestMarkdownToHTML_GFMStrikethrough(t *testing.T) {
	out, err := MarkdownToHTML([]byte("~~gone~~\n"), options.DefaultGFM(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p><del>gone</del></p>\n", out)
}

func TestParse_ReturnsDocumentNode(t *testing.T) {
	arena := ast.NewArena()
	doc := Parse(arena, []byte("# hi\n"), options.Default())
	require.Equal(t, ast.KindDocument, doc.Kind)
	require.NotNil(t, doc.FirstChild)
	assert.Equal(t, ast.KindHeading, doc.FirstChild.Kind)
}

func TestFormatCommonMark_RoundTripsPlainText(t *testing.T) {
	arena := ast.NewArena()
	doc := Parse(arena, []byte("hello *world*\n"), options.Default())

	var buf strings.Builder
	require.NoError(t, FormatCommonMark(&buf, doc, options.DefaultRenderOptions()))
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "world")
}

func TestFormatXML_EmitsDoctype(t *testing.T) {
	arena := ast.NewArena()
	doc := Parse(arena, []byte("hi\n"), options.Default())

	var buf strings.Builder
	require.NoError(t, FormatXML(&buf, doc, options.DefaultRenderOptions()))
	assert.Contains(t, buf.String(), "<!DOCTYPE document")
	assert.Contains(t, buf.String(), "<paragraph>")
}

func TestFrontMatter_DecodesYAML(t *testing.T) {
	opts := options.Default()
	opts.Extensions.FrontMatter = true

	arena := ast.NewArena()
	doc := Parse(arena, []byte("---\ntitle: Hello\ncount: 3\n---\nbody\n"), opts)

	var meta struct {
		Title string `yaml:"title"`
		Count int    `yaml:"count"`
	}
	require.NoError(t, FrontMatter(doc, &meta))
	assert.Equal(t, "Hello", meta.Title)
	assert.Equal(t, 3, meta.Count)
}

func TestFrontMatter_NoOpWithoutFrontMatter(t *testing.T) {
	arena := ast.NewArena()
	doc := Parse(arena, []byte("body\n"), options.Default())

	var meta map[string]interface{}
	require.NoError(t, FrontMatter(doc, &meta))
	assert.Nil(t, meta)
}
