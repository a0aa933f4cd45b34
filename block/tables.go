package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryOpenTable recognises a GFM table: the current open leaf must be a
// paragraph holding exactly one line of text (the header row), and rest
// must be a valid delimiter row with a column count matching the header.
// On success the paragraph is discarded and replaced with a Table
// container holding the header row; the delimiter row itself contributes
// only alignments, not a row of its own.
func (p *Parser) tryOpenTable(rest []byte) bool {
	alignments, ok := scanner.TableDelimiterRow(rest)
	if !ok {
		return false
	}
	pl, _ := p.leaf.Value.(*paragraphLines)
	if pl == nil || len(pl.lines) != 1 {
		return false
	}
	headerCells := scanner.TableRowCells([]byte(pl.lines[0]))
	if len(headerCells) != len(alignments) {
		return false
	}

	paragraphNode := p.leaf
	p.leaf = nil
	p.leafKind = leafNone
	paragraphNode.Unlink()

	table := p.arena.NewNode(ast.KindTable)
	table.Value = &ast.TableData{Alignments: alignments}
	table.Start = paragraphNode.Start
	p.tip().AppendChild(table)
	p.push(&container{node: table})

	p.appendTableRowCells(headerCells, true, alignments)
	return true
}

// appendTableRow parses one table body line into cells and appends it as
// a row of the currently open table (p.tip()).
func (p *Parser) appendTableRow(line []byte) {
	data, _ := p.tip().Value.(*ast.TableData)
	var alignments []ast.Alignment
	if data != nil {
		alignments = data.Alignments
	}
	cells := scanner.TableRowCells(line)
	p.appendTableRowCells(cells, false, alignments)
}

func (p *Parser) appendTableRowCells(cells []string, header bool, alignments []ast.Alignment) {
	table := p.tip()
	row := p.arena.NewNode(ast.KindTableRow)
	row.Start = ast.Pos{Line: p.lineNum, Column: 1}
	table.AppendChild(row)

	for i, text := range cells {
		align := ast.AlignNone
		if i < len(alignments) {
			align = alignments[i]
		}
		cell := p.arena.NewNode(ast.KindTableCell)
		cell.Value = &ast.TableCellData{Header: header, Alignment: align, Column: i}
		cell.Literal = text
		row.AppendChild(cell)
	}
}
