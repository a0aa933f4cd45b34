// Package markdown is the public entry point: it wires the block parser,
// the inline parser, and the three emitters together behind three
// functions, matching the teacher's top-level package shape (a thin
// façade over `model`/`transform` internals) rather than exposing the
// block/inline packages directly.
package markdown

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/block"
	"github.com/shodgson/commonmark-go/inline"
	"github.com/shodgson/commonmark-go/options"
	"github.com/shodgson/commonmark-go/render/commonmark"
	"github.com/shodgson/commonmark-go/render/html"
	"github.com/shodgson/commonmark-go/render/xml"
)

// ParseOptions and RenderOptions are re-exported here so callers who only
// need the top-level API never have to import the options package
// directly, the same convenience the teacher's markdown package offers
// over model's lower-level types.
type ParseOptions = options.ParseOptions
type RenderOptions = options.RenderOptions

// Parse runs the block parser followed by the inline parser over source
// and returns the finished document root. The returned node (and every
// node reachable from it) is only valid for the lifetime of the Arena
// that produced it; callers that need the tree to outlive a request scope
// should not call arena.Release.
func Parse(arena *ast.Arena, source []byte, opts ParseOptions) *ast.Node {
	doc := block.Parse(arena, source, opts)
	inline.ParseDocument(arena, doc, opts)
	return doc
}

// MarkdownToHTML parses source and renders it straight to HTML, the
// one-shot convenience path most callers want.
func MarkdownToHTML(source []byte, parseOpts ParseOptions, renderOpts RenderOptions) (string, error) {
	arena := ast.NewArena()
	defer arena.Release()
	doc := Parse(arena, source, parseOpts)
	renderOpts.Tagfilter = parseOpts.Extensions.Tagfilter
	return html.RenderString(doc, renderOpts)
}

// FormatHTML renders an already-parsed document as HTML.
func FormatHTML(w io.Writer, doc *ast.Node, opts RenderOptions) error {
	return html.Render(w, doc, opts)
}

// FormatCommonMark renders an already-parsed document back to CommonMark
// text.
func FormatCommonMark(w io.Writer, doc *ast.Node, opts RenderOptions) error {
	return commonmark.Render(w, doc, opts)
}

// FormatXML renders an already-parsed document as the structural XML dump.
func FormatXML(w io.Writer, doc *ast.Node, opts RenderOptions) error {
	return xml.Render(w, doc, opts)
}

// FrontMatter decodes the document's raw front-matter text (set by the
// FrontMatter extension) into v, using YAML per the GFM convention. It
// returns nil without touching v if the document carries no front matter,
// so callers can call it unconditionally after Parse.
func FrontMatter(doc *ast.Node, v interface{}) error {
	document := ast.DocumentOf(doc)
	if document == nil || document.FrontMatter == "" {
		return nil
	}
	if err := yaml.Unmarshal([]byte(document.FrontMatter), v); err != nil {
		return fmt.Errorf("markdown: decoding front matter: %w", err)
	}
	return nil
}
