package inline

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// isDelimiterChar reports whether c is one of the characters the delimiter
// stack tracks, given which extensions are enabled. '*' and '_' (plain
// emphasis) are always tracked.
func (p *Parser) isDelimiterChar(c byte) bool {
	switch c {
	case '*', '_':
		return true
	case '~':
		return p.opts.Extensions.Strikethrough || p.opts.Extensions.Subscript
	case '^':
		return p.opts.Extensions.Superscript
	case '=':
		return p.opts.Extensions.Highlight
	case '+':
		return p.opts.Extensions.Underline
	case '|':
		return p.opts.Extensions.Spoiler
	default:
		return false
	}
}

func runLength(src []byte, i int, ch byte) int {
	n := 0
	for i+n < len(src) && src[i+n] == ch {
		n++
	}
	return n
}

// runeBefore decodes the rune immediately before byte offset i in src, or
// 0 if i == 0.
func runeBefore(src []byte, i int) rune {
	if i == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRune(src[:i])
	return r
}

// runeAfter decodes the rune at byte offset i in src, or 0 past the end.
func runeAfter(src []byte, i int) rune {
	if i >= len(src) {
		return 0
	}
	r, _ := utf8.DecodeRune(src[i:])
	return r
}

// isCJK reports whether r is a CJK ideograph/syllable, or otherwise prints
// full-width under East Asian width classification (fullwidth forms and
// wide punctuation behave like CJK text for flanking purposes even outside
// the Han/Hiragana/Katakana/Hangul blocks, e.g. fullwidth Latin and the
// CJK symbols/punctuation block).
func isCJK(r rune) bool {
	if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
		return true
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

// flankClass classifies a rune for the flanking computation: whitespace,
// punctuation (including, under the CJK-friendly tweak, CJK ideographs and
// kana/hangul), or "other".
type flankClass int

const (
	flankOther flankClass = iota
	flankWhitespace
	flankPunctuation
)

func (p *Parser) classify(r rune) flankClass {
	if r == 0 {
		return flankWhitespace // start/end of input behaves like whitespace
	}
	if scanner.IsUnicodeWhitespace(r) {
		return flankWhitespace
	}
	if scanner.IsUnicodePunctuation(r) {
		return flankPunctuation
	}
	if p.opts.Extensions.CJKFriendlyEmphasis && isCJK(r) {
		return flankPunctuation
	}
	return flankOther
}

// scanDelimiterRun scans the run of ch starting at pos, computes its
// left/right-flanking status and can-open/can-close per CommonMark §6.2,
// and returns the run length.
func (p *Parser) scanDelimiterRun(ch byte) (length int, canOpen, canClose bool) {
	length = runLength(p.src, p.pos, ch)
	before := p.classify(runeBefore(p.src, p.pos))
	after := p.classify(runeAfter(p.src, p.pos+length))

	leftFlanking := after != flankWhitespace &&
		!(after == flankPunctuation && before != flankWhitespace && before != flankPunctuation)
	rightFlanking := before != flankWhitespace &&
		!(before == flankPunctuation && after != flankWhitespace && after != flankPunctuation)

	if ch == '_' {
		canOpen = leftFlanking && (!rightFlanking || before == flankPunctuation)
		canClose = rightFlanking && (!leftFlanking || after == flankPunctuation)
	} else {
		canOpen = leftFlanking
		canClose = rightFlanking
	}
	return length, canOpen, canClose
}

// pushDelimiter records a scanned run as a Text node holding its literal
// characters, plus a delimiter-stack entry pointing at it.
func (p *Parser) pushDelimiter(ch byte, length int, canOpen, canClose bool) {
	n := p.arena.NewNode(ast.KindText)
	n.Literal = repeatByte(ch, length)
	p.parent.AppendChild(n)
	p.delimiters = append(p.delimiters, &delimiter{
		char: ch, origLen: length, length: length,
		canOpen: canOpen, canClose: canClose, node: n, active: true,
	})
}

func repeatByte(b byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}

// lookForMatchingOpener scans the delimiter stack backward from just
// before closerIdx, down to (and including) bottom, for an active opener
// of the same character compatible with closer under the "rule of
// three". bottom is the enclosing bracket's delimiter-stack watermark (or
// 0 for a whole block), so an opener cannot be found outside the
// bracket that is currently being resolved.
func (p *Parser) lookForMatchingOpener(closerIdx, bottom int) int {
	closer := p.delimiters[closerIdx]
	for j := closerIdx - 1; j >= bottom; j-- {
		opener := p.delimiters[j]
		if !opener.active || opener.char != closer.char || !opener.canOpen {
			continue
		}
		if (opener.canOpen && opener.canClose) || (closer.canOpen && closer.canClose) {
			if (opener.origLen+closer.origLen)%3 == 0 &&
				!(opener.origLen%3 == 0 && closer.origLen%3 == 0) {
				continue
			}
		}
		return j
	}
	return -1
}

// processEmphasis runs the closing half of the delimiter-run algorithm
// over every delimiter pushed since startIdx (the bracket stack's
// "previous delimiter" watermark, or 0 for a whole block), pairing
// closers with openers and emitting the wrapping inline nodes, per
// CommonMark §6.2's "process emphasis" procedure.
func (p *Parser) processEmphasis(startIdx int) {
	i := startIdx
	for i < len(p.delimiters) {
		closer := p.delimiters[i]
		if !closer.active || !closer.canClose {
			i++
			continue
		}
		openerIdx := p.lookForMatchingOpener(i, startIdx)
		if openerIdx < 0 {
			if !closer.canOpen {
				p.removeDelimiter(i)
				continue
			}
			i++
			continue
		}
		opener := p.delimiters[openerIdx]
		use := p.pairLength(opener, closer)
		p.wrapBetween(openerIdx, i, use)
		opener.length -= use
		closer.length -= use

		// Stale openers of the same character strictly between opener and
		// closer can never be reached by a later closer; drop them now.
		// Highest index first so lower indices stay valid.
		for k := i - 1; k > openerIdx; k-- {
			if p.delimiters[k].char == closer.char {
				p.removeDelimiter(k)
				i--
			}
		}

		if closer.length == 0 {
			p.removeDelimiter(i)
		}
		if opener.length == 0 {
			p.removeDelimiter(openerIdx)
			i--
		}
	}
}

// pairLength decides how many characters of opener/closer this pairing
// consumes: for '~', '=', '+' and '|' the smaller of the two remaining
// lengths; for '^' always 1; otherwise 2 if both sides have at least 2
// remaining (strong/double variant), else 1.
func (p *Parser) pairLength(opener, closer *delimiter) int {
	if opener.char == '~' || opener.char == '=' || opener.char == '+' || opener.char == '|' {
		n := opener.length
		if closer.length < n {
			n = closer.length
		}
		return n
	}
	if opener.char == '^' {
		return 1
	}
	if opener.length >= 2 && closer.length >= 2 {
		return 2
	}
	return 1
}

// kindForPairing maps a delimiter character and consumed width to the AST
// kind the wrap should produce.
func kindForPairing(ch byte, width int) ast.Kind {
	switch ch {
	case '*', '_':
		if width == 2 {
			return ast.KindStrong
		}
		return ast.KindEmphasis
	case '~':
		if width == 2 {
			return ast.KindStrikethrough
		}
		return ast.KindSubscript
	case '^':
		return ast.KindSuperscript
	case '=':
		return ast.KindHighlight
	case '+':
		return ast.KindUnderline
	case '|':
		return ast.KindSpoiler
	}
	return ast.KindEmphasis
}

// wrapBetween consumes `use` characters off the tail of opener.node's
// literal and the head of closer.node's literal (discarding them — they
// are delimiter markers, not content) and wraps every sibling node that
// sits between the two delimiter nodes in a new node of the kind the
// character/width pair implies.
func (p *Parser) wrapBetween(openerIdx, closerIdx, use int) {
	opener := p.delimiters[openerIdx]
	closer := p.delimiters[closerIdx]

	opener.node.Literal = opener.node.Literal[:len(opener.node.Literal)-use]
	closer.node.Literal = closer.node.Literal[use:]

	wrap := p.arena.NewNode(kindForPairing(opener.char, use))
	parent := opener.node.Parent

	for n := opener.node.Next; n != nil && n != closer.node; {
		next := n.Next
		n.Unlink()
		wrap.AppendChild(n)
		n = next
	}
	parent.InsertBefore(wrap, closer.node)

	if opener.node.Literal == "" {
		opener.node.Unlink()
	}
	if closer.node.Literal == "" {
		closer.node.Unlink()
	}
}

func (p *Parser) removeDelimiter(i int) {
	p.delimiters = append(p.delimiters[:i], p.delimiters[i+1:]...)
}
