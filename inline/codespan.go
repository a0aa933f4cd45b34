package inline

import (
	"strings"

	"github.com/shodgson/commonmark-go/ast"
)

// tryCodeSpan recognises a balanced backtick-run code span starting at
// p.src[p.pos] == '`': an opening run of N backticks, content, and a
// closing run of exactly N backticks. If no matching closer exists the
// opening run is left as literal text and false is returned.
func (p *Parser) tryCodeSpan() bool {
	openLen := runLength(p.src, p.pos, '`')
	contentStart := p.pos + openLen

	i := contentStart
	for i < len(p.src) {
		if p.src[i] != '`' {
			i++
			continue
		}
		runStart := i
		runLen := runLength(p.src, i, '`')
		if runLen == openLen {
			n := p.arena.NewNode(ast.KindCodeSpan)
			n.Literal = normalizeCodeSpanContent(string(p.src[contentStart:runStart]))
			p.parent.AppendChild(n)
			p.pos = runStart + runLen
			return true
		}
		i += runLen
	}
	return false
}

// normalizeCodeSpanContent applies the code-span whitespace rule: line
// endings become spaces, and if the content both starts and ends with a
// space (and is not all spaces) one space is stripped from each end.
func normalizeCodeSpanContent(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' && strings.TrimSpace(s) != "" {
		return s[1 : len(s)-1]
	}
	return s
}
