package inline

import "github.com/shodgson/commonmark-go/ast"

// tryMath recognises `$...$` inline math and `$$...$$` display math
// starting at p.pos == '$', gated by Extensions.Math. Inline math forbids
// its content from starting or ending with whitespace and from containing
// a line ending; display math may span multiple lines.
func (p *Parser) tryMath() bool {
	if !p.opts.Extensions.Math {
		return false
	}
	if runLength(p.src, p.pos, '$') >= 2 {
		return p.tryDisplayMath()
	}
	return p.tryInlineMath()
}

func (p *Parser) tryInlineMath() bool {
	start := p.pos + 1
	if start >= len(p.src) || p.src[start] == ' ' || p.src[start] == '\t' || p.src[start] == '$' {
		return false
	}
	for i := start; i < len(p.src); i++ {
		switch p.src[i] {
		case '\n':
			return false
		case '\\':
			i++
		case '$':
			if i == start || p.src[i-1] == ' ' || p.src[i-1] == '\t' {
				return false
			}
			p.emitMath(ast.KindMathInline, string(p.src[start:i]))
			p.pos = i + 1
			return true
		}
	}
	return false
}

func (p *Parser) tryDisplayMath() bool {
	start := p.pos + 2
	for i := start; i+1 < len(p.src); i++ {
		if p.src[i] == '\\' {
			i++
			continue
		}
		if p.src[i] == '$' && p.src[i+1] == '$' {
			p.emitMath(ast.KindMathDisplay, string(p.src[start:i]))
			p.pos = i + 2
			return true
		}
	}
	return false
}

func (p *Parser) emitMath(kind ast.Kind, literal string) {
	n := p.arena.NewNode(kind)
	n.Value = &ast.MathData{Literal: literal}
	p.parent.AppendChild(n)
}
