package scanner

import (
	"strings"

	"github.com/shodgson/commonmark-go/ast"
)

// TableDelimiterRow recognises a GFM table delimiter row: a sequence of
// cells matching `:?-+:?`, separated by pipes, optionally bracketed by
// leading/trailing pipes. Returns the per-column alignment.
func TableDelimiterRow(line []byte) (alignments []ast.Alignment, ok bool) {
	trimmed := strings.TrimSpace(string(line))
	if trimmed == "" {
		return nil, false
	}
	trimmed = strings.Trim(trimmed, "|")
	if trimmed == "" {
		return nil, false
	}
	cells := splitTableCells(trimmed)
	if len(cells) == 0 {
		return nil, false
	}
	out := make([]ast.Alignment, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := strings.Trim(cell, ":")
		if dashes == "" || strings.ContainsFunc(dashes, func(r rune) bool { return r != '-' }) {
			return nil, false
		}
		switch {
		case left && right:
			out = append(out, ast.AlignCenter)
		case left:
			out = append(out, ast.AlignLeft)
		case right:
			out = append(out, ast.AlignRight)
		default:
			out = append(out, ast.AlignNone)
		}
	}
	return out, true
}

// TableRowCells splits a table row line into its cell texts, each trimmed
// of surrounding whitespace but with backslash escapes left unresolved, honouring a backslash-escaped pipe as literal and a code-span
// backtick run as pipe-opaque.
func TableRowCells(line []byte) []string {
	trimmed := strings.TrimSpace(string(line))
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := splitTableCells(trimmed)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// splitTableCells splits on unescaped '|' bytes, treating a run of
// backticks as opening/closing a code span during which '|' is inert.
func splitTableCells(s string) []string {
	var cells []string
	var cur strings.Builder
	inSpan := false
	spanLen := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '\\' && i+1 < len(s) && s[i+1] == '|' && !inSpan:
			cur.WriteByte('\\')
			cur.WriteByte('|')
			i++
			continue
		case b == '`':
			run := 1
			for i+run < len(s) && s[i+run] == '`' {
				run++
			}
			if !inSpan {
				inSpan = true
				spanLen = run
			} else if run == spanLen {
				inSpan = false
			}
			cur.WriteString(s[i : i+run])
			i += run - 1
			continue
		case b == '|' && !inSpan:
			cells = append(cells, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(b)
	}
	cells = append(cells, cur.String())
	return cells
}
