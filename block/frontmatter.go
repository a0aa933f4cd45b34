package block

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// consumeFrontMatter recognises a leading front-matter block: the
// configured delimiter alone on the first line, a closing occurrence of
// the same delimiter, and everything between stored verbatim on the
// document. Returns the number of lines consumed (0 if no front matter
// was found, in which case the caller starts parsing from line 0).
func (p *Parser) consumeFrontMatter(lines []rawLine) (int, bool) {
	delim := p.opts.FrontMatterDelimiter()
	if !scanner.FrontMatterDelimiter(lines[0].bytes, delim) {
		return 0, false
	}
	for i := 1; i < len(lines); i++ {
		if scanner.FrontMatterDelimiter(lines[i].bytes, delim) {
			var body []byte
			for j := 1; j < i; j++ {
				body = append(body, lines[j].bytes...)
				body = append(body, '\n')
			}
			p.setFrontMatter(string(body))
			return i + 1, true
		}
	}
	return 0, false
}

func (p *Parser) setFrontMatter(text string) {
	if doc, ok := p.doc.Value.(*ast.Document); ok {
		doc.FrontMatter = text
	}
}
