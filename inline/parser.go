package inline

import (
	"unicode/utf8"

	"github.com/shodgson/commonmark-go/internal/entity"
)

// run walks p.src from p.pos to the end, dispatching each special
// character to its recogniser and falling back to a run of plain text
// otherwise. It never returns an error: anything unrecognised degrades to
// literal text.
func (p *Parser) run() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.tryBackslashEscape() {
				continue
			}
		case '`':
			if p.tryCodeSpan() {
				continue
			}
		case '<':
			if p.tryAngleAutolink() || p.tryRawHTML() {
				continue
			}
		case '[':
			if p.tryWikiLink() || p.tryFootnoteReference() {
				continue
			}
			p.pushBracket(false)
			p.pos++
			continue
		case '!':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '[' {
				p.pos++
				p.pushBracket(true)
				p.pos++
				continue
			}
		case ']':
			p.handleCloseBracket()
			continue
		case '&':
			if p.tryEntity() {
				continue
			}
		case '\n':
			if p.tryLineEnding() {
				continue
			}
		case '$':
			if p.tryMath() {
				continue
			}
		case ':':
			if p.tryShortcode() {
				continue
			}
		default:
			if p.tryBareAutolink() {
				continue
			}
			if p.isDelimiterChar(c) {
				length, canOpen, canClose := p.scanDelimiterRun(c)
				if length > 0 {
					p.pushDelimiter(c, length, canOpen, canClose)
					p.pos += length
					continue
				}
			}
		}
		p.flushPlainRun()
	}
	p.processEmphasis(0)
}

// flushPlainRun consumes one rune of ordinary text plus the run of ASCII
// bytes after it that isPlainRune accepts (to avoid fragmenting plain
// words into one node per byte) and appends it, applying smart
// punctuation if the tweak is on. With Extensions.Autolink on, the run
// stops before an ASCII letter or digit that starts a word, so run can
// offer that position to tryBareAutolink.
func (p *Parser) flushPlainRun() {
	start := p.pos
	r, size := utf8.DecodeRune(p.src[p.pos:])
	p.pos += size
	for p.pos < len(p.src) && isPlainRune(p.src[p.pos]) {
		if p.opts.Extensions.Autolink && isWordRune(rune(p.src[p.pos])) && !isWordRune(rune(p.src[p.pos-1])) {
			break
		}
		p.pos++
	}
	_ = r
	chunk := string(p.src[start:p.pos])
	if p.opts.Tweaks.SmartPunctuation {
		chunk = entity.SmartPunctuation(chunk, runeBefore(p.src, start))
	}
	p.appendText(chunk)
}

// isPlainRune reports whether b can extend a plain-text run: any byte
// that is not itself a special dispatch character in run's switch.
func isPlainRune(b byte) bool {
	switch b {
	case '\\', '`', '<', '[', ']', '!', '&', '\n', '$', ':',
		'*', '_', '~', '^', '=', '+', '|':
		return false
	default:
		return b < 0x80
	}
}
