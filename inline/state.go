// Package inline implements the second parsing pass: given a finalised
// leaf block whose content permits inlines (paragraph, heading, table
// cell, description-list term; an alert's custom title is kept as the
// plain string in ast.AlertData and is not inline-parsed), it walks the
// block's
// accumulated text once and produces a sequence of inline children —
// emphasis/strong and the other delimiter-run marks, links and images,
// autolinks, raw HTML, code spans, math, wiki-links, footnote references,
// shortcodes, and line breaks. It never fails: unmatched delimiters and
// malformed constructs degrade to literal text.
package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/options"
)

// delimiter is one entry in the delimiter stack: a run of identical
// delimiter-run characters recorded when scanned, consulted and partially
// consumed when a later closer searches backward for a match.
type delimiter struct {
	char     byte
	origLen  int // the run length as scanned, before any characters are consumed by pairing
	length   int // remaining unconsumed length
	canOpen  bool
	canClose bool
	// node is the Text node carrying this run's literal characters; closing
	// splits pieces off of it as emphasis/strong nodes are built.
	node *ast.Node
	// active is set when the run is pushed and is checked before the run
	// is used as an opener or closer; nothing in this package clears it, so
	// a fully consumed run leaves matching by being removed from the stack.
	active bool
}

// bracket is one entry in the bracket stack, pushed on '[' or '!['.
type bracket struct {
	isImage bool
	node    *ast.Node // placeholder Text node marking the bracket's position
	active  bool       // cleared once a link resolves, forbidding link nesting
	// delimiterStackBottom is the delimiter-stack length at push time: the
	// emphasis algorithm run over this bracket's content must not look for
	// openers below this watermark (they belong to text before the '[').
	delimiterStackBottom int
}

// Parser holds per-call state for one leaf block parsed by parseLeaf
// (called from ParseDocument).
type Parser struct {
	arena *ast.Arena
	opts  options.ParseOptions
	doc   *ast.Node // the owning document, for reference/footnote lookups

	src []byte
	pos int

	parent *ast.Node // the node inline children are appended to

	delimiters []*delimiter
	brackets   []*bracket

	// footnoteDepth is compared against opts.Limits.MaxFootnoteNestingDepth
	// before a footnote reference is accepted. Nothing in this package
	// increments it (each leaf gets a fresh Parser, and a reference does not
	// parse its definition's content), so it stays 0.
	footnoteDepth int

	// footnoteRefs accumulates every footnote reference encountered, across
	// every block parsed by this Parser's owning driver pass, in the order
	// first seen — used by the renumbering pass once the whole document's
	// inlines have been parsed.
	footnoteRefs *[]*ast.Node
}
