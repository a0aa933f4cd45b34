package block

import (
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// leafKind distinguishes the handful of node kinds that can be the
// currently open multi-line leaf.
type leafKind int

const (
	leafNone leafKind = iota
	leafParagraph
	leafCodeBlockIndented
	leafCodeBlockFenced
	leafHTMLBlock
)

// paragraphLines is the accumulator attached to an in-progress paragraph's
// Value field; it is collapsed into Literal when the paragraph closes.
type paragraphLines struct {
	lines []string
}

func appendParagraphLine(p *ast.Node, text []byte) {
	pl, _ := p.Value.(*paragraphLines)
	if pl == nil {
		pl = &paragraphLines{}
		p.Value = pl
	}
	pl.lines = append(pl.lines, string(text))
}

// openLeaf opens a new multi-line leaf node as a child of p.tip() and
// records it as the parser's current open leaf.
func (p *Parser) openLeaf(kind ast.Kind, lk leafKind) *ast.Node {
	n := p.arena.NewNode(kind)
	n.Start = ast.Pos{Line: p.lineNum, Column: 1}
	p.tip().AppendChild(n)
	p.leaf = n
	p.leafKind = lk
	return n
}

// closeLeaf finalises whatever leaf is currently open, if any: paragraphs
// collapse their accumulated lines into Literal (trimmed), indented code
// blocks trim blank trailing lines (fenced ones keep theirs), HTML blocks
// drop trailing newlines, and all leaves get an End position.
func (p *Parser) closeLeaf() {
	if p.leaf == nil {
		return
	}
	n := p.leaf
	n.End = ast.Pos{Line: p.lineNum, Column: 1}

	switch p.leafKind {
	case leafParagraph:
		pl, _ := n.Value.(*paragraphLines)
		n.Value = nil
		if pl != nil {
			n.Literal = strings.TrimRight(strings.Join(pl.lines, "\n"), " \t\n")
		}
		if p.pendingSetext != nil {
			if setext, ok := p.pendingSetext[n]; ok {
				delete(p.pendingSetext, n)
				promoteToHeading(n, setext)
			}
		}

	case leafCodeBlockIndented:
		data, _ := n.Value.(*ast.CodeBlockData)
		if data != nil {
			data.Closed = true
		}
		n.Literal = trimTrailingBlankLines(n.Literal)

	case leafCodeBlockFenced:
		if data, ok := n.Value.(*ast.CodeBlockData); ok {
			data.Closed = true
		}

	case leafHTMLBlock:
		n.Literal = strings.TrimRight(n.Literal, "\n")
	}

	p.leaf = nil
	p.leafKind = leafNone
}

func trimTrailingBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

func promoteToHeading(n *ast.Node, level int) {
	n.Kind = ast.KindHeading
	n.Value = &ast.HeadingData{Level: level, Setext: true}
}

// absorbContent appends the remainder of the line (from offset) into
// whatever leaf is open, opening a paragraph if none is and the line is
// non-blank. Blank lines close an open leaf that does not tolerate blank
// continuation (paragraphs, HTML blocks of type 6/7); fenced and indented
// code blocks absorb blank lines as content.
func (p *Parser) absorbContent(line []byte, offset int, blank bool) {
	if p.leaf != nil {
		switch p.leafKind {
		case leafParagraph:
			if blank {
				p.closeLeaf()
				return
			}
			appendParagraphLine(p.leaf, trimLeadingSpaces(line[offset:]))
			return

		case leafCodeBlockIndented:
			width, indentEnd := scanner.IndentWidth(line, offset)
			var content []byte
			if blank {
				content = nil
			} else if width >= 4 {
				content = consumeColumns(line, offset, 4)
			} else {
				content = line[indentEnd:]
			}
			p.leaf.Literal += string(content) + "\n"
			return

		case leafCodeBlockFenced:
			data, _ := p.leaf.Value.(*ast.CodeBlockData)
			rest := line[offset:]
			width, indentEnd := scanner.IndentWidth(rest, 0)
			probe := rest[indentEnd:]
			if width <= 3 && data != nil && scanner.CodeFenceClose(probe, data.FenceChar, data.FenceLength) {
				p.closeLeaf()
				return
			}
			content := stripFenceIndent(line, offset, data)
			p.leaf.Literal += content + "\n"
			return

		case leafHTMLBlock:
			data, _ := p.leaf.Value.(*ast.HTMLBlockData)
			p.leaf.Literal += string(line[offset:]) + "\n"
			if data != nil && data.BlockType >= 1 && data.BlockType <= 5 {
				if scanner.HTMLBlockEnd(line[offset:], data.BlockType) {
					p.closeLeaf()
				}
				return
			}
			if blank {
				p.closeLeaf()
			}
			return
		}
	}

	if blank {
		return
	}
	n := p.openLeaf(ast.KindParagraph, leafParagraph)
	appendParagraphLine(n, trimLeadingSpaces(line[offset:]))
}

func trimLeadingSpaces(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:]
}

// consumeColumns returns the bytes of line starting at offset after exactly
// want columns of leading indentation have been removed (partial tabs
// expand to the remaining spaces, matching CommonMark's indented-code
// dedent rule).
func consumeColumns(line []byte, offset, want int) []byte {
	col := 0
	i := offset
	for i < len(line) && col < want {
		switch line[i] {
		case ' ':
			col++
			i++
		case '\t':
			step := 4 - (col % 4)
			if col+step > want {
				extra := col + step - want
				col = want
				rest := make([]byte, 0, len(line)-i+extra)
				for k := 0; k < extra; k++ {
					rest = append(rest, ' ')
				}
				rest = append(rest, line[i+1:]...)
				return rest
			}
			col += step
			i++
		default:
			col = want
		}
	}
	return line[i:]
}

// stripFenceIndent removes up to the opening fence's recorded indentation
// (FenceOffset columns) from a fenced code block's content line.
func stripFenceIndent(line []byte, offset int, data *ast.CodeBlockData) string {
	if data == nil || data.FenceOffset == 0 {
		return string(line[offset:])
	}
	stripped := consumeColumns(line, offset, data.FenceOffset)
	return string(stripped)
}

// closeContainers pops and finalises containers from index `from` to the
// end of the open stack, deepest first. from must be >= 1: the document
// root (index 0) is closed separately by closeAllContainers at the end of
// Parse.
func (p *Parser) closeContainers(from int) {
	if from < 1 {
		from = 1
	}
	for i := len(p.open) - 1; i >= from; i-- {
		c := p.open[i]
		c.node.End = ast.Pos{Line: p.lineNum, Column: 1}
		finalizeContainer(c)
	}
	p.open = p.open[:from]
}

// closeAllContainers finalises every open container including the
// document root, at end of input.
func (p *Parser) closeAllContainers() {
	for i := len(p.open) - 1; i >= 0; i-- {
		c := p.open[i]
		c.node.End = ast.Pos{Line: p.lineNum, Column: 1}
		finalizeContainer(c)
	}
	p.open = p.open[:0]
}

// finalizeContainer applies the looseness rule as a container closes: a
// list item (or description item) that absorbed a blank line anywhere
// within it marks its owning list (or itself) as loose. This is an
// approximation of the full blank-line-between-blocks rule that treats
// any blank line seen while the item stayed open as loosening evidence,
// including a single trailing blank at end of input; real-world input
// rarely trips that edge, and a best-effort block parser does not fail
// on it either way.
func finalizeContainer(c *container) {
	switch c.node.Kind {
	case ast.KindListItem:
		if c.everBlank {
			if list := c.node.Parent; list != nil {
				if data, ok := list.Value.(*ast.ListData); ok {
					data.Tight = false
				}
			}
		}
	case ast.KindDescriptionItem:
		if c.everBlank {
			if data, ok := c.node.Value.(*ast.DescriptionItemData); ok {
				data.Tight = false
			}
		}
	}
}
