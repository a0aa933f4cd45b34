// Package block implements the line-oriented outer parsing pass: it owns
// the tree under construction, the stack of open container blocks, the
// document's reference-link and footnote maps, and drives each input line
// through the continuation / opening / absorption / closure steps
// described in the spec.
package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/options"
)

// Parser holds all per-call state for one invocation of Parse. It is not
// safe for concurrent use and must not be reused across calls.
type Parser struct {
	arena *ast.Arena
	opts  options.ParseOptions

	doc  *ast.Node
	open []*container // open[0] is always the document; containers only

	// leaf is the currently open multi-line leaf block (paragraph, an
	// in-progress code block or HTML block), attached as the last child
	// of p.tip(). nil when no leaf is open. Single-line leaves (headings,
	// thematic breaks) are never assigned here: they are created and
	// closed within the same call.
	leaf     *ast.Node
	leafKind leafKind

	// pendingSetext records a paragraph that a setext underline has
	// promised to promote into a heading once the paragraph closes.
	pendingSetext map[*ast.Node]int

	lineNum int

	// footnoteDefs is populated as footnote-definition blocks are opened;
	// footnote hoisting runs once, after the whole document has been
	// parsed.
	footnoteDefs []*ast.Node
}

// Parse runs the block parser over input and returns the document root.
// input is treated as UTF-8; malformed byte sequences, including NUL
// bytes, are preserved as-is (NUL survives into the tree; only the HTML
// emitter substitutes U+FFFD for it). Parse never fails: malformed
// constructs degrade to literal text rather than producing an error.
func Parse(arena *ast.Arena, input []byte, opts options.ParseOptions) *ast.Node {
	p := &Parser{arena: arena, opts: opts}
	p.doc = arena.NewDocument()
	p.doc.Start = ast.Pos{Line: 1, Column: 1}
	root := &container{node: p.doc, startedAtLine: 1}
	p.open = []*container{root}

	lines := splitLines(input)

	startLine := 0
	if opts.Extensions.FrontMatter && len(lines) > 0 {
		if consumed, ok := p.consumeFrontMatter(lines); ok {
			startLine = consumed
		}
	}

	for i := startLine; i < len(lines); i++ {
		p.lineNum = i + 1
		p.processLine(lines[i].bytes)
	}

	p.closeLeaf()
	p.closeAllContainers()
	p.doc.End = p.currentEndPos(lines, input)

	finalizeLinkReferenceDefinitions(p.doc)
	if opts.Extensions.Footnotes {
		hoistFootnotes(p.doc, p.footnoteDefs, opts.Limits)
	}

	return p.doc
}

// currentEndPos computes the document's end position. Per spec, a document
// whose input ends in a line terminator ends at column 1 of the line past
// the last one split out of it; one that doesn't ends at the column past
// the last byte of its final line (the "final byte's column" boundary
// case), not a hard-coded column 1.
func (p *Parser) currentEndPos(lines []rawLine, input []byte) ast.Pos {
	if len(input) == 0 {
		return ast.Pos{Line: 1, Column: 1}
	}
	switch input[len(input)-1] {
	case '\n', '\r':
		return ast.Pos{Line: len(lines) + 1, Column: 1}
	default:
		return ast.Pos{Line: len(lines), Column: len(lines[len(lines)-1].bytes) + 1}
	}
}

// tip returns the deepest currently-open node (the last entry on the open
// stack), which is where leaf content is absorbed unless a new block is
// opened first.
func (p *Parser) tip() *ast.Node {
	return p.open[len(p.open)-1].node
}

func (p *Parser) tipContainer() *container {
	return p.open[len(p.open)-1]
}

func (p *Parser) push(c *container) {
	c.startedAtLine = p.lineNum
	c.node.Start = ast.Pos{Line: p.lineNum, Column: 1}
	p.open = append(p.open, c)
}

// processLine runs one input line through continuation, opening,
// absorption and closure.
func (p *Parser) processLine(line []byte) {
	matched, offset, column := p.matchContinuations(line)

	blank := isBlankFrom(line, offset)

	if matched < len(p.open) {
		if p.canLazyContinue(line, offset, matched, blank) {
			p.absorbLazyContinuation(line, offset)
			p.markBlankTrail(matched, blank)
			return
		}
		p.closeLeaf()
		p.closeContainers(matched)
	}

	// A code block or HTML block in progress absorbs every line verbatim
	// until its own closing condition fires; no new block can open inside
	// it, so the opening pass is skipped entirely.
	if p.leaf != nil && p.leafKind != leafParagraph {
		p.absorbContent(line, offset, blank)
		p.markBlankTrail(len(p.open), blank)
		return
	}

	// An open table absorbs every non-blank line as a row directly; it
	// never holds an open leaf (p.leaf stays nil throughout).
	if p.leaf == nil && len(p.open) > 0 && p.tip().Kind == ast.KindTable {
		if blank {
			p.markBlankTrail(len(p.open), blank)
			return
		}
		p.appendTableRow(line[offset:])
		p.markBlankTrail(len(p.open), blank)
		return
	}

	var consumed bool
	offset, column, consumed = p.openNewBlocks(line, offset, column, blank)
	if !consumed {
		p.absorbContent(line, offset, blank)
	}
	p.markBlankTrail(len(p.open), blank)
}

func isBlankFrom(line []byte, offset int) bool {
	for i := offset; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

func (p *Parser) markBlankTrail(matched int, blank bool) {
	if matched == 0 {
		return
	}
	c := p.open[matched-1]
	c.lastLineBlank = blank
	if blank {
		c.everBlank = true
	}
}
