package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/options"
)

// These cover the eight worked-example inputs carried alongside the HTML
// rendering rules: one fixed input/option/output triple per case, each
// exercising a different extension or render option in isolation.

func TestScenario_EmphasisAndStrong(t *testing.T) {
	out, err := MarkdownToHTML([]byte("Hello, **world**!\n"), options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello, <strong>world</strong>!</p>\n", out)
}

func TestScenario_StrikethroughToggle(t *testing.T) {
	source := []byte("Hello ~~world~~ 世界!\n")

	on, err := MarkdownToHTML(source, options.DefaultGFM(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <del>world</del> 世界!</p>\n", on)

	off, err := MarkdownToHTML(source, options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello ~~world~~ 世界!</p>\n", off)
}

func TestScenario_FencedCodeBlockLangPlacement(t *testing.T) {
	source := []byte("```rust\nfn hello();\n```\n")

	languageClass, err := MarkdownToHTML(source, options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<pre><code class=\"language-rust\">fn hello();\n</code></pre>\n", languageClass)

	preLang := options.DefaultRenderOptions()
	preLang.GitHubPreLang = true
	withLangAttr, err := MarkdownToHTML(source, options.Default(), preLang)
	require.NoError(t, err)
	assert.Equal(t, "<pre lang=\"rust\"><code>fn hello();\n</code></pre>\n", withLangAttr)
}

// A raw HTML block is classified once, at parse time, from the tag name
// alone — rendering options only change how the already-classified block is
// escaped, not whether it is treated as a block at all. So the "paragraph
// wrapped, escaped" framing this case is sometimes described with does not
// apply here: `<script>...</script>` is an HTML block either way, and
// Escape mode just HTML-escapes its raw bytes in place rather than omitting
// them.
func TestScenario_RawHTMLBlockUnsafeAndEscape(t *testing.T) {
	source := []byte("<script>alert(1)</script>\n")

	omitted, err := MarkdownToHTML(source, options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<!-- raw HTML omitted -->\n", omitted)

	escapeOpts := options.DefaultRenderOptions()
	escapeOpts.Escape = true
	escaped, err := MarkdownToHTML(source, options.Default(), escapeOpts)
	require.NoError(t, err)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;\n\n", escaped)

	unsafeOpts := options.DefaultRenderOptions()
	unsafeOpts.Unsafe = true
	raw, err := MarkdownToHTML(source, options.Default(), unsafeOpts)
	require.NoError(t, err)
	assert.Equal(t, "<script>alert(1)</script>\n", raw)
}

func TestScenario_TableAlignment(t *testing.T) {
	source := []byte("| a | b |\n|---|:-:|\n| c | d |\n")
	out, err := MarkdownToHTML(source, options.DefaultGFM(), options.DefaultRenderOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<thead>")
	assert.Contains(t, out, "<th>a</th>")
	assert.Contains(t, out, `<th align="center">b</th>`)
	assert.Contains(t, out, "<tbody>")
	assert.Contains(t, out, "<td>c</td>")
	assert.Contains(t, out, `<td align="center">d</td>`)
}

func TestScenario_AlertBlock(t *testing.T) {
	opts := options.DefaultGFM()
	opts.Extensions.Alerts = true
	out, err := MarkdownToHTML([]byte("> [!NOTE]\n> Hi.\n"), opts, options.DefaultRenderOptions())
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="markdown-alert markdown-alert-note">`)
	assert.Contains(t, out, `<p class="markdown-alert-title">Note</p>`)
	assert.Contains(t, out, "<p>Hi.</p>")
}

func TestScenario_CommonMarkWidthWrapping(t *testing.T) {
	arena := ast.NewArena()
	doc := Parse(arena, []byte("hello hello hello hello hello hello\n"), options.Default())

	opts := options.DefaultRenderOptions()
	opts.Width = 20

	var buf strings.Builder
	require.NoError(t, FormatCommonMark(&buf, doc, opts))
	assert.Equal(t, "hello hello hello\nhello hello hello\n", buf.String())
}

func TestScenario_WikiLinkTitleAfterPipe(t *testing.T) {
	opts := options.Default()
	opts.Extensions.WikiLinks = true
	opts.Tweaks.WikiLinkTitleAfterPipe = true

	out, err := MarkdownToHTML([]byte("[[Name of page|Title]]\n"), opts, options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p><a href=\"Name%20of%20page\" data-wikilink=\"true\">Title</a></p>\n", out)
}

func TestLinkInnerTextIsPreserved(t *testing.T) {
	out, err := MarkdownToHTML([]byte("[click](url)\n"), options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p><a href=\"url\">click</a></p>\n", out)
}

func TestImageAltTextIsFlattened(t *testing.T) {
	out, err := MarkdownToHTML([]byte("![an *emphasised* alt](pic.png)\n"), options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p><img src=\"pic.png\" alt=\"an emphasised alt\" /></p>\n", out)
}

func TestLinkWithNestedEmphasisKeepsBothInsideAnchor(t *testing.T) {
	out, err := MarkdownToHTML([]byte("[a **b** c](/x)\n"), options.Default(), options.DefaultRenderOptions())
	require.NoError(t, err)
	assert.Equal(t, "<p><a href=\"/x\">a <strong>b</strong> c</a></p>\n", out)
}
