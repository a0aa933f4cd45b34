package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// matchContinuations walks the open-container stack (skipping the
// document root, which always continues) and returns how many containers
// still accept this line, plus the byte offset and column reached after
// consuming their markers/indentation.
func (p *Parser) matchContinuations(line []byte) (matched, offset, column int) {
	matched = 1 // the document always continues
	offset, column = 0, 0

	for i := 1; i < len(p.open); i++ {
		c := p.open[i]
		nOffset, nColumn, ok := continuesContainer(c, line, offset, column)
		if !ok {
			break
		}
		offset, column = nOffset, nColumn
		matched++
	}
	return matched, offset, column
}

// continuesContainer reports whether container c accepts the current line
// starting at (offset, column), returning the advanced position if so.
func continuesContainer(c *container, line []byte, offset, column int) (newOffset, newColumn int, ok bool) {
	switch c.node.Kind {
	case ast.KindBlockQuote:
		return blockQuoteContinuation(line, offset, column)

	case ast.KindMultilineBlockQuote:
		if isBlankFrom(line, offset) {
			return offset, column, true
		}
		if _, closeOK := scanner.MultilineBlockQuoteFence(trimLeadingIndent(line, offset, 3)); closeOK {
			return offset, column, false // let closure handle the fence line itself
		}
		return offset, column, true

	case ast.KindAlert:
		if c.fenceLen > 0 {
			if isBlankFrom(line, offset) {
				return offset, column, true
			}
			if length, closeOK := scanner.MultilineBlockQuoteFence(trimLeadingIndent(line, offset, 3)); closeOK && length >= c.fenceLen {
				return offset, column, false
			}
			return offset, column, true
		}
		return blockQuoteContinuation(line, offset, column)

	case ast.KindListItem:
		data, _ := c.node.Value.(*ast.ListItemData)
		required := 2
		if data != nil {
			required = data.MarkerOffset + data.Padding
		}
		if isBlankFrom(line, offset) {
			return offset, column, true
		}
		width, _ := scanner.IndentWidth(line, offset)
		if width < required {
			return offset, column, false
		}
		return advanceColumns(line, offset, column, required)

	case ast.KindList, ast.KindDescriptionList, ast.KindDescriptionItem, ast.KindDocument:
		return offset, column, true

	case ast.KindDescriptionTerm:
		return offset, column, false // a term is always exactly one line

	case ast.KindDescriptionDetails:
		if isBlankFrom(line, offset) {
			return offset, column, true
		}
		width, _ := scanner.IndentWidth(line, offset)
		if width < 2 {
			return offset, column, false
		}
		return advanceColumns(line, offset, column, 2)

	case ast.KindFootnoteDefinition:
		if isBlankFrom(line, offset) {
			return offset, column, true
		}
		width, _ := scanner.IndentWidth(line, offset)
		if width < 4 {
			return offset, column, false
		}
		return advanceColumns(line, offset, column, 4)

	case ast.KindTable:
		if isBlankFrom(line, offset) {
			return offset, column, false
		}
		return offset, column, true

	default:
		return offset, column, true
	}
}

func blockQuoteContinuation(line []byte, offset, column int) (int, int, bool) {
	width, indentEnd := scanner.IndentWidth(line, offset)
	if width > 3 {
		return offset, column, false
	}
	rest := line[indentEnd:]
	consumed, ok := scanner.BlockQuoteStart(rest)
	if !ok {
		return offset, column, false
	}
	return indentEnd + consumed, column + width + consumed, true
}

// advanceColumns consumes exactly `want` columns worth of indentation
// (spaces/tabs) from line starting at offset, returning the new byte
// offset and column. If the available indentation exceeds want, only
// want columns are consumed and the rest (extra spaces) remain for the
// leaf content, matching CommonMark's partial-tab-consumption rule.
func advanceColumns(line []byte, offset, column, want int) (int, int, bool) {
	col := 0
	i := offset
	for i < len(line) && col < want {
		switch line[i] {
		case ' ':
			col++
			i++
		case '\t':
			step := 4 - ((column + col) % 4)
			if col+step > want {
				// Partial tab consumption: the tab is only partly used;
				// the remainder is treated as spaces by the caller via
				// column bookkeeping alone (byte offset still advances
				// past the whole tab, matching common implementations).
				col = want
				i++
			} else {
				col += step
				i++
			}
		default:
			i = len(line) + 1 // force exit without matching
			col = -1
		}
	}
	if col < want {
		return offset, column, false
	}
	return i, column + want, true
}

// trimLeadingIndent returns line[offset:] with up to maxIndent columns of
// leading spaces/tabs stripped, used by scanners that themselves assume no
// leading indentation.
func trimLeadingIndent(line []byte, offset, maxIndent int) []byte {
	width, end := scanner.IndentWidth(line, offset)
	if width > maxIndent {
		return line[offset:]
	}
	return line[end:]
}
