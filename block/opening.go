package block

import (
	"strconv"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// markerInfo describes a recognised list-item marker.
type markerInfo struct {
	Kind       ast.ListKind
	BulletChar byte
	Delimiter  byte
	Start      int
}

// parseListMarker recognises a bullet or ordered-list marker at the start
// of rest, returning its byte width (not including the one required
// trailing space/tab, which the caller consumes separately).
func parseListMarker(rest []byte) (info markerInfo, width int, ok bool) {
	if len(rest) == 0 {
		return markerInfo{}, 0, false
	}
	switch rest[0] {
	case '-', '+', '*':
		if len(rest) == 1 || rest[1] == ' ' || rest[1] == '\t' {
			return markerInfo{Kind: ast.ListKindBullet, BulletChar: rest[0]}, 1, true
		}
		return markerInfo{}, 0, false
	}
	i := 0
	for i < len(rest) && i < 9 && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) {
		return markerInfo{}, 0, false
	}
	if rest[i] != '.' && rest[i] != ')' {
		return markerInfo{}, 0, false
	}
	w := i + 1
	if w < len(rest) && rest[w] != ' ' && rest[w] != '\t' {
		return markerInfo{}, 0, false
	}
	n, _ := strconv.Atoi(string(rest[:i]))
	return markerInfo{Kind: ast.ListKindOrdered, Delimiter: rest[i], Start: n}, w, true
}

// openNewBlocks is the block-opening pass: it first tries to open zero or
// more new container blocks (block quotes, list items, description
// items), then tries to open or convert a leaf. It returns the advanced
// (offset, column) and whether the line was fully consumed by what it
// opened (in which case absorbContent should not run for this line).
func (p *Parser) openNewBlocks(line []byte, offset, column int, blank bool) (int, int, bool) {
	for {
		width, indentEnd := scanner.IndentWidth(line, offset)
		if width >= 4 {
			break
		}
		rest := line[indentEnd:]

		if consumed, ok := scanner.BlockQuoteStart(rest); ok {
			p.closeLeafIfInterruptible()
			afterMarker := rest[consumed:]
			if p.opts.Extensions.Alerts {
				if kind, title, aok := scanner.AlertStart(afterMarker); aok {
					p.openAlert(kind, title)
					return len(line), column, true
				}
			}
			p.openBlockQuote()
			offset, column = indentEnd+consumed, column+width+consumed
			continue
		}

		if p.opts.Extensions.MultilineBlockQuotes {
			if length, ok := scanner.MultilineBlockQuoteFence(rest); ok && !blank {
				p.closeLeafIfInterruptible()
				p.openMultilineBlockQuote(length)
				return len(line), column, true
			}
		}

		if info, w, ok := parseListMarker(rest); ok && !scanner.ThematicBreak(rest) {
			if !p.listMarkerCanOpenHere(rest, w, blank) {
				break
			}
			afterMarker := rest[w:]
			spaceWidth, _ := scanner.IndentWidth(afterMarker, 0)

			var padding int
			var rest2 []byte
			switch {
			case len(afterMarker) == 0 || isBlankFrom(afterMarker, 0):
				padding = w + 1
				rest2 = nil
			case spaceWidth >= 5:
				padding = w + 1
				rest2 = consumeColumns(afterMarker, 0, 1)
			default:
				padding = w + spaceWidth
				rest2 = consumeColumns(afterMarker, 0, spaceWidth)
			}

			var task *ast.TaskData
			if p.opts.Extensions.TaskList {
				if checked, ch, _, tok := scanner.TaskListMarker(rest2, p.opts.Tweaks.RelaxedTaskListCharacters); tok {
					task = &ast.TaskData{Checked: checked, MarkerChar: ch}
				}
			}
			p.openListItem(info, width, padding, task)
			offset, column = indentEnd+padding, column+width+padding
			continue
		}

		if p.opts.Extensions.DescriptionLists {
			if contentStart, ok := scanner.DescriptionItemStart(rest); ok {
				p.closeLeafIfInterruptible()
				p.openDescriptionItem()
				offset, column = indentEnd+contentStart, column+width+contentStart
				continue
			}
		}

		break
	}

	if blank {
		return offset, column, false
	}

	width, indentEnd := scanner.IndentWidth(line, offset)
	rest := line[indentEnd:]

	if p.leaf != nil && p.leafKind == leafParagraph && !p.opts.Tweaks.IgnoreSetext {
		if width <= 3 {
			if level, ok := scanner.SetextUnderline(rest); ok {
				if p.pendingSetext == nil {
					p.pendingSetext = make(map[*ast.Node]int)
				}
				p.pendingSetext[p.leaf] = level
				p.closeLeaf()
				return len(line), column, true
			}
		}
	}

	interruptingParagraph := p.leaf != nil && p.leafKind == leafParagraph

	if width <= 3 && scanner.ThematicBreak(rest) {
		p.closeLeaf()
		p.openThematicBreak()
		return len(line), column, true
	}

	if width <= 3 {
		if level, contentStart, ok := scanner.ATXHeadingStart(rest); ok {
			p.closeLeaf()
			p.openATXHeading(rest, level, contentStart)
			return len(line), column, true
		}
	}

	if width <= 3 {
		if ch, fenceLength, info, ok := scanner.CodeFenceOpen(rest); ok {
			p.closeLeaf()
			p.openFencedCodeBlock(ch, fenceLength, info, width)
			return len(line), column, true
		}
	}

	if !interruptingParagraph && width >= 4 {
		p.closeLeaf()
		p.openIndentedCodeBlock(line, offset)
		return len(line), column, true
	}

	if width <= 3 {
		if blockType, ok := scanner.HTMLBlockStart(rest); ok {
			if !interruptingParagraph || blockType != 7 {
				p.closeLeaf()
				p.openHTMLBlock(blockType, line, offset)
				if scanner.HTMLBlockEnd(rest, blockType) && blockType >= 1 && blockType <= 5 {
					p.closeLeaf()
				}
				return len(line), column, true
			}
		}
	}

	if !interruptingParagraph && p.opts.Extensions.Footnotes {
		if label, contentStart, ok := scanner.FootnoteDefinitionStart(rest); ok {
			p.openFootnoteDefinition(label)
			offset, column = indentEnd+contentStart, column+width+contentStart
			return offset, column, false
		}
	}

	if p.opts.Extensions.Table && p.leaf != nil && p.leafKind == leafParagraph {
		if p.tryOpenTable(rest) {
			return len(line), column, true
		}
	}

	return offset, column, false
}

// closeLeafIfInterruptible closes the current open leaf unless doing so
// would be wrong for a construct that must never interrupt a paragraph;
// callers that reach here have already decided interruption is allowed.
func (p *Parser) closeLeafIfInterruptible() {
	p.closeLeaf()
}

func (p *Parser) openBlockQuote() {
	n := p.arena.NewNode(ast.KindBlockQuote)
	p.push(&container{node: n})
	p.tipParentAppend(n)
}

func (p *Parser) openAlert(kind ast.AlertKind, title string) {
	n := p.arena.NewNode(ast.KindAlert)
	n.Value = &ast.AlertData{Kind: kind, Title: title, IsCustomTitled: title != ""}
	p.push(&container{node: n})
	p.tipParentAppend(n)
}

func (p *Parser) openMultilineBlockQuote(fenceLen int) {
	n := p.arena.NewNode(ast.KindMultilineBlockQuote)
	p.push(&container{node: n, fenceLen: fenceLen})
	p.tipParentAppend(n)
}

// tipParentAppend appends n as a child of whatever was the tip before n
// was pushed; push appends n to p.open, so the parent is the second-to-
// last entry.
func (p *Parser) tipParentAppend(n *ast.Node) {
	parent := p.open[len(p.open)-2].node
	parent.AppendChild(n)
}

func (p *Parser) openListItem(info markerInfo, markerOffset, padding int, task *ast.TaskData) {
	// If a list is already open here but with a different bullet/delimiter,
	// it is a distinct list: close it first so the new one becomes a
	// sibling rather than nesting inside the mismatched one.
	if len(p.open) > 0 {
		top := p.open[len(p.open)-1]
		if top.kind() == ast.KindList {
			data, _ := top.node.Value.(*ast.ListData)
			sameList := data != nil && data.Kind == info.Kind &&
				((info.Kind == ast.ListKindBullet && data.BulletChar == info.BulletChar) ||
					(info.Kind == ast.ListKindOrdered && data.Delimiter == info.Delimiter))
			if !sameList {
				p.closeContainers(len(p.open) - 1)
			}
		}
	}

	needNewList := len(p.open) == 0 || p.open[len(p.open)-1].kind() != ast.KindList
	if needNewList {
		list := p.arena.NewNode(ast.KindList)
		list.Value = &ast.ListData{
			Kind:       info.Kind,
			Start:      info.Start,
			Delimiter:  info.Delimiter,
			BulletChar: info.BulletChar,
			Tight:      true,
		}
		p.tip().AppendChild(list)
		p.push(&container{node: list})
	}

	item := p.arena.NewNode(ast.KindListItem)
	item.Value = &ast.ListItemData{MarkerOffset: markerOffset, Padding: padding, Task: task}
	p.tip().AppendChild(item)
	p.push(&container{node: item})
}

// openDescriptionItem opens a detail block introduced by a ':' marker. If
// the currently open leaf is a paragraph, it is taken as this item's term
// and converted in place; consecutive ':' details immediately following
// one another (no new term paragraph between them) are kept under the
// same item rather than starting a new one.
func (p *Parser) openDescriptionItem() {
	var term *ast.Node
	if p.leaf != nil && p.leafKind == leafParagraph {
		if pl, ok := p.leaf.Value.(*paragraphLines); ok {
			term = p.leaf
			term.Kind = ast.KindDescriptionTerm
			term.Literal = strings.Join(pl.lines, "\n")
			term.Value = nil
			term.Unlink()
		}
		p.leaf = nil
		p.leafKind = leafNone
	}

	if term == nil {
		if top := p.tip(); top.Kind == ast.KindDescriptionItem {
			details := p.arena.NewNode(ast.KindDescriptionDetails)
			top.AppendChild(details)
			p.push(&container{node: details})
			return
		}
	}

	list := p.tip()
	if list.Kind != ast.KindDescriptionList {
		newList := p.arena.NewNode(ast.KindDescriptionList)
		list.AppendChild(newList)
		p.push(&container{node: newList})
		list = newList
	}

	item := p.arena.NewNode(ast.KindDescriptionItem)
	item.Value = &ast.DescriptionItemData{Tight: true}
	if term != nil {
		item.AppendChild(term)
	}
	list.AppendChild(item)
	p.push(&container{node: item})

	details := p.arena.NewNode(ast.KindDescriptionDetails)
	item.AppendChild(details)
	p.push(&container{node: details})
}

func (p *Parser) openThematicBreak() {
	n := p.arena.NewNode(ast.KindThematicBreak)
	n.Start = ast.Pos{Line: p.lineNum, Column: 1}
	n.End = n.Start
	p.tip().AppendChild(n)
}

func (p *Parser) openATXHeading(rest []byte, level, contentStart int) {
	raw := rest[contentStart:]
	content := stripATXClosingRun(raw)
	closed := len(content) < len(trimRightSpace(raw))
	n := p.arena.NewNode(ast.KindHeading)
	n.Value = &ast.HeadingData{Level: level, Closed: closed}
	n.Literal = string(content)
	n.Start = ast.Pos{Line: p.lineNum, Column: 1}
	n.End = n.Start
	p.tip().AppendChild(n)
}

// stripATXClosingRun trims a trailing run of '#' characters (preceded by
// at least one space, or the whole trimmed line) per the ATX heading rule.
func stripATXClosingRun(content []byte) []byte {
	s := trimRightSpace(content)
	end := len(s)
	i := end
	for i > 0 && s[i-1] == '#' {
		i--
	}
	if i < end && (i == 0 || s[i-1] == ' ' || s[i-1] == '\t') {
		s = trimRightSpace(s[:i])
	}
	return trimRightSpace(trimLeftSpace(s))
}

func trimRightSpace(b []byte) []byte {
	i := len(b)
	for i > 0 && (b[i-1] == ' ' || b[i-1] == '\t') {
		i--
	}
	return b[:i]
}

func trimLeftSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:]
}

func (p *Parser) openFencedCodeBlock(ch byte, fenceLength int, info string, fenceOffset int) {
	n := p.openLeaf(ast.KindCodeBlock, leafCodeBlockFenced)
	n.Value = &ast.CodeBlockData{
		Fenced:      true,
		FenceChar:   ch,
		FenceLength: fenceLength,
		FenceOffset: fenceOffset,
		Info:        info,
	}
}

func (p *Parser) openIndentedCodeBlock(line []byte, offset int) {
	n := p.openLeaf(ast.KindCodeBlock, leafCodeBlockIndented)
	n.Value = &ast.CodeBlockData{}
	content := consumeColumns(line, offset, 4)
	n.Literal = string(content) + "\n"
}

func (p *Parser) openHTMLBlock(blockType int, line []byte, offset int) {
	n := p.openLeaf(ast.KindHTMLBlock, leafHTMLBlock)
	n.Value = &ast.HTMLBlockData{BlockType: blockType}
	n.Literal = string(line[offset:]) + "\n"
}

func (p *Parser) openFootnoteDefinition(label string) {
	n := p.arena.NewNode(ast.KindFootnoteDefinition)
	n.Value = &ast.FootnoteDefinitionData{Name: label}
	p.tip().AppendChild(n)
	p.push(&container{node: n})
	p.footnoteDefs = append(p.footnoteDefs, n)
}

// listMarkerCanOpenHere applies the paragraph-interrupt restriction on
// list items: a list item may interrupt an open paragraph only if its
// first line is non-blank and, for ordered lists, the start number is 1.
func (p *Parser) listMarkerCanOpenHere(rest []byte, markerWidth int, blank bool) bool {
	if p.leaf == nil || p.leafKind != leafParagraph {
		return true
	}
	info, _, ok := parseListMarker(rest)
	if !ok {
		return true
	}
	if info.Kind == ast.ListKindOrdered && info.Start != 1 {
		return false
	}
	after := rest[markerWidth:]
	trimmed := trimLeftSpace(after)
	return len(trimmed) > 0
}
