package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// canLazyContinue reports whether the line, having failed continuation on
// one or more open containers starting at index `matched`, may still be
// treated as a lazy continuation line of an open paragraph: every
// container between matched and the tip must itself tolerate lazy
// continuation, the tip must be an open paragraph, and the line must not
// itself look like the start of a new block that would interrupt a
// paragraph.
func (p *Parser) canLazyContinue(line []byte, offset, matched int, blank bool) bool {
	if blank {
		return false
	}
	if matched == 0 {
		return false
	}
	if p.leaf == nil || p.leafKind != leafParagraph {
		return false
	}
	for i := matched; i < len(p.open)-1; i++ {
		if !acceptsLazyContinuation(p.open[i].kind()) {
			return false
		}
	}
	return !startsParagraphInterrupt(line, offset)
}

// startsParagraphInterrupt reports whether the remaining bytes of the line
// look like the opening of a block type allowed to interrupt a paragraph
// without an intervening blank line (thematic breaks, ATX headings, block
// quotes, fenced code, HTML blocks of type 1-6, and non-empty list items).
func startsParagraphInterrupt(line []byte, offset int) bool {
	width, indentEnd := scanner.IndentWidth(line, offset)
	if width > 3 {
		return false
	}
	rest := line[indentEnd:]

	if scanner.ThematicBreak(rest) {
		return true
	}
	if _, _, ok := scanner.ATXHeadingStart(rest); ok {
		return true
	}
	if _, ok := scanner.BlockQuoteStart(rest); ok {
		return true
	}
	if _, _, _, ok := scanner.CodeFenceOpen(rest); ok {
		return true
	}
	if blockType, ok := scanner.HTMLBlockStart(rest); ok && blockType != 7 {
		return true
	}
	if isNonEmptyListMarker(rest) {
		return true
	}
	return false
}

func isNonEmptyListMarker(rest []byte) bool {
	marker, w, ok := parseListMarker(rest)
	if !ok {
		return false
	}
	if marker.Kind == ast.ListKindOrdered && marker.Start != 1 {
		return false
	}
	after := rest[w:]
	if len(after) == 0 {
		return false
	}
	if after[0] != ' ' && after[0] != '\t' {
		return false
	}
	trimmed := after[1:]
	for len(trimmed) > 0 && (trimmed[0] == ' ' || trimmed[0] == '\t') {
		trimmed = trimmed[1:]
	}
	return len(trimmed) > 0
}

// absorbLazyContinuation appends the line's remaining text (joined by a
// soft line break within the paragraph, handled later by the inline pass
// which re-splits on newlines) to the open paragraph tip.
func (p *Parser) absorbLazyContinuation(line []byte, offset int) {
	appendParagraphLine(p.leaf, line[offset:])
}
