package inline

import (
	"regexp"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryBackslashEscape recognises a backslash before an ASCII punctuation
// character (an escape) or before a line ending (a hard break) at
// p.pos == '\\'.
func (p *Parser) tryBackslashEscape() bool {
	if p.pos+1 >= len(p.src) {
		return false
	}
	next := p.src[p.pos+1]
	if next == '\n' {
		p.appendBreak(ast.KindHardBreak)
		p.pos += 2
		return true
	}
	if !scanner.IsASCIIPunctuation(next) {
		return false
	}
	n := p.arena.NewNode(ast.KindEscaped)
	n.Value = &ast.EscapedData{Char: next}
	n.Literal = string(next)
	p.parent.AppendChild(n)
	p.pos += 2
	return true
}

// tryLineEnding recognises a line ending at p.pos == '\n', classifying it
// as a hard break when preceded by two or more trailing spaces (trimmed
// off the preceding text node) or a soft break otherwise.
func (p *Parser) tryLineEnding() bool {
	if p.pos >= len(p.src) || p.src[p.pos] != '\n' {
		return false
	}
	if hard := p.trimHardBreakSpaces(); hard {
		p.appendBreak(ast.KindHardBreak)
	} else {
		p.appendBreak(ast.KindSoftBreak)
	}
	p.pos++
	return true
}

// trimHardBreakSpaces strips 2+ trailing spaces off the immediately
// preceding Text node, reporting whether it found enough to count as a
// hard line break.
func (p *Parser) trimHardBreakSpaces() bool {
	last := p.parent.LastChild
	if last == nil || last.Kind != ast.KindText {
		return false
	}
	trail := 0
	for trail < len(last.Literal) && last.Literal[len(last.Literal)-1-trail] == ' ' {
		trail++
	}
	if trail < 2 {
		return false
	}
	last.Literal = last.Literal[:len(last.Literal)-trail]
	if last.Literal == "" {
		last.Unlink()
	}
	return true
}

func (p *Parser) appendBreak(kind ast.Kind) {
	n := p.arena.NewNode(kind)
	p.parent.AppendChild(n)
}

var reEntityRef = regexp.MustCompile(`^&(#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6}|[A-Za-z][A-Za-z0-9]{1,31});`)

// tryEntity recognises an HTML named or numeric character reference at
// p.pos == '&' and appends its decoded form as plain text.
func (p *Parser) tryEntity() bool {
	m := reEntityRef.Find(p.src[p.pos:])
	if m == nil {
		return false
	}
	decoded := entity.Decode(string(m))
	p.appendText(decoded)
	p.pos += len(m)
	return true
}

// appendText appends s as plain text, merging into the current last child
// if it is already a Text node so that runs of plain characters don't
// fragment into one node per rune.
func (p *Parser) appendText(s string) {
	if s == "" {
		return
	}
	if last := p.parent.LastChild; last != nil && last.Kind == ast.KindText {
		last.Literal += s
		return
	}
	n := p.arena.NewNode(ast.KindText)
	n.Literal = s
	p.parent.AppendChild(n)
}

// emitLiteral appends s as plain text unconditionally, used by callers
// (bracket handling) that already know no other recognisers apply.
func (p *Parser) emitLiteral(s string) {
	p.appendText(s)
}
