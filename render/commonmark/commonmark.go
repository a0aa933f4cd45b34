// Package commonmark implements the CommonMark emitter: it walks the AST
// and produces Markdown text that reparses (under the same parse options)
// to a structurally equal document. Grounded on the teacher's
// `markdown/to_markdown.go` `SerializerState`: the same
// Write/Text/EnsureNewLine/WrapBlock discipline, adapted from a flat
// mark-based inline model (ProseMirror) to this package's nested inline
// tree (CommonMark nodes nest emphasis/links directly as children, so
// renderInline here recurses instead of tracking an "active marks" list).
package commonmark

import (
	"io"
	"strconv"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/options"
)

// Render writes doc as CommonMark text into w according to opts. Per
// spec, output is produced directly rather than requiring the caller to
// buffer it; here that just means the accumulated state is written to w
// in one final, un-transformed pass.
func Render(w io.Writer, doc *ast.Node, opts options.RenderOptions) error {
	out, err := RenderString(doc, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString renders doc as CommonMark text and returns it directly.
func RenderString(doc *ast.Node, opts options.RenderOptions) (string, error) {
	s := &state{opts: opts}
	s.renderChildren(doc)
	s.ensureNewLine()
	return s.out.String(), nil
}

// state is this package's analogue of the teacher's SerializerState: Delim
// accumulates the prefix every line of the current nesting of containers
// needs (block-quote "> ", list-item indentation); closed marks that a
// block has ended and the next Write needs a blank line first.
type state struct {
	opts   options.RenderOptions
	out    strings.Builder
	delim  string
	closed bool
}

func (s *state) atBlank() bool {
	out := s.out.String()
	return len(out) == 0 || out[len(out)-1] == '\n'
}

func (s *state) ensureNewLine() {
	if !s.atBlank() {
		s.out.WriteByte('\n')
	}
}

func (s *state) flushClose() {
	if !s.closed {
		return
	}
	s.ensureNewLine()
	trimmed := strings.TrimRight(s.delim, " ")
	s.out.WriteString(trimmed + "\n")
	s.closed = false
}

func (s *state) write(content string) {
	s.flushClose()
	if s.delim != "" && s.atBlank() {
		s.out.WriteString(s.delim)
	}
	s.out.WriteString(content)
}

func (s *state) closeBlock() {
	s.closed = true
}

// wrapBlock renders body with every line it writes prefixed by delim
// (firstDelim on the very first line), then closes the block — the same
// shape as SerializerState.WrapBlock.
func (s *state) wrapBlock(delim, firstDelim string, body func()) {
	old := s.delim
	s.write(firstDelim)
	s.delim += delim
	body()
	s.delim = old
	s.closeBlock()
}

// text writes literal prose, escaping CommonMark-significant characters
// line by line unless escape is false (used inside code spans/blocks and
// raw HTML, which must not be escaped). When escaping and opts.Width is
// set, each line is greedily word-wrapped to that width instead of being
// written verbatim.
func (s *state) text(text string, escape bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if escape && s.opts.Width > 0 {
			s.writeWrapped(line, i == 0)
		} else {
			s.write("")
			if escape {
				s.out.WriteString(Esc(line, i == 0))
			} else {
				s.out.WriteString(line)
			}
		}
		if i != len(lines)-1 {
			s.out.WriteByte('\n')
		}
	}
}

// currentLineLen reports how many bytes have been written on the current
// output line so far, for writeWrapped's width accounting.
func (s *state) currentLineLen() int {
	out := s.out.String()
	return len(out) - (strings.LastIndexByte(out, '\n') + 1)
}

// writeWrapped greedily word-wraps line to opts.Width, breaking only at
// space boundaries: a word is moved to a new line whenever appending it
// (plus its separating space) to the current line would exceed the width,
// unless the current line is still empty (a single word longer than the
// width is never split mid-word).
func (s *state) writeWrapped(line string, atLineStart bool) {
	words := strings.Split(line, " ")
	for i, word := range words {
		esc := Esc(word, atLineStart && i == 0)
		switch {
		case i == 0:
			s.write("")
		case s.currentLineLen() > 0 && s.currentLineLen()+1+len(esc) > s.opts.Width:
			s.out.WriteByte('\n')
			s.write("")
		default:
			s.write(" ")
		}
		s.out.WriteString(esc)
	}
}

// alwaysEscapeBytes are inline-structural characters that can be
// misread as markup wherever they appear in text, so they are always
// backslash-escaped regardless of position.
const alwaysEscapeBytes = "\\`*_[]<>~^|{}"

// Esc escapes CommonMark punctuation so line, reparsed on its own, comes
// back as the same literal text: always-significant inline characters
// everywhere, plus (when atLineStart) the block-marker characters that
// are only significant in a line's leading run of whitespace.
func Esc(line string, atLineStart bool) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if strings.IndexByte(alwaysEscapeBytes, c) >= 0 {
			b.WriteByte('\\')
		} else if c == '!' && i+1 < len(line) && line[i+1] == '[' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	out := b.String()
	if atLineStart {
		out = escapeLineStartMarker(out)
	}
	return out
}

// escapeLineStartMarker escapes a leading block-marker character (after
// any leading spaces) that would otherwise reopen a block construct:
// '#', '-', '+', '>', or a digit run followed by '.' or ')'.
func escapeLineStartMarker(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i >= len(s) {
		return s
	}
	switch s[i] {
	case '#', '-', '+', '>':
		return s[:i] + "\\" + s[i:]
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j > i && j < len(s) && (s[j] == '.' || s[j] == ')') {
		return s[:j] + "\\" + s[j:]
	}
	return s
}

func backtickFence(body string, minLen int) string {
	longest := 0
	run := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	length := minLen
	if longest+1 > length {
		length = longest + 1
	}
	return strings.Repeat("`", length)
}

// renderChildren walks n's children as blocks, in document order.
func (s *state) renderChildren(n *ast.Node) {
	for c := n.FirstChild; c != nil; c = c.Next {
		s.renderBlock(c)
	}
}

func (s *state) renderBlock(n *ast.Node) {
	switch n.Kind {
	case ast.KindParagraph:
		s.renderInlineChildren(n)
		s.closeBlock()

	case ast.KindHeading:
		s.renderHeadingBlock(n)

	case ast.KindThematicBreak:
		s.write("***")
		s.closeBlock()

	case ast.KindCodeBlock:
		s.renderCodeBlock(n)

	case ast.KindHTMLBlock:
		s.text(strings.TrimRight(n.Literal, "\n"), false)
		s.closeBlock()

	case ast.KindLinkReferenceDefinition:
		// not re-emitted; any reference-style links that survive inline
		// rendering are rewritten as inline links instead.

	case ast.KindBlockQuote, ast.KindMultilineBlockQuote:
		s.wrapBlock("> ", "> ", func() { s.renderChildren(n) })

	case ast.KindAlert:
		s.renderAlertBlock(n)

	case ast.KindList:
		s.renderList(n)

	case ast.KindListItem:
		// handled by renderList, which drives its children directly

	case ast.KindDescriptionList:
		s.renderChildren(n)

	case ast.KindDescriptionItem:
		s.renderChildren(n)

	case ast.KindDescriptionTerm:
		s.renderInlineChildren(n)
		s.closeBlock()

	case ast.KindDescriptionDetails:
		s.wrapBlock(":   ", ":   ", func() { s.renderChildren(n) })

	case ast.KindTable:
		s.renderTable(n)

	case ast.KindFootnoteDefinition:
		s.renderFootnoteDefinitionBlock(n)

	default:
		s.renderInlineChildren(n)
	}
}

func (s *state) renderHeadingBlock(n *ast.Node) {
	data, _ := n.Value.(*ast.HeadingData)
	level := 1
	if data != nil {
		level = data.Level
	}
	s.write(strings.Repeat("#", level) + " ")
	s.renderInlineChildren(n)
	s.closeBlock()
}

func (s *state) renderCodeBlock(n *ast.Node) {
	data, _ := n.Value.(*ast.CodeBlockData)
	body := n.Literal
	if data == nil || !data.Fenced {
		s.wrapBlock("    ", "    ", func() {
			s.text(strings.TrimRight(body, "\n"), false)
		})
		return
	}
	fenceChar := "`"
	if data != nil && data.FenceChar == '~' {
		fenceChar = "~"
	}
	fence := backtickFence(body+data.Info, 3)
	if fenceChar == "~" {
		fence = strings.Repeat("~", len(fence))
	}
	info := ""
	if data != nil {
		info = data.Info
	}
	s.write(fence + info)
	s.out.WriteByte('\n')
	s.text(strings.TrimRight(body, "\n"), false)
	s.out.WriteByte('\n')
	s.out.WriteString(fence)
	s.closeBlock()
}

func (s *state) renderAlertBlock(n *ast.Node) {
	data, _ := n.Value.(*ast.AlertData)
	s.wrapBlock("> ", "> ", func() {
		s.write("[!" + strings.ToUpper(data.Kind.String()) + "]")
		if data != nil && data.IsCustomTitled && data.Title != "" {
			s.write(" " + data.Title)
		}
		s.out.WriteByte('\n')
		s.renderChildren(n)
	})
}

func (s *state) renderList(n *ast.Node) {
	data, _ := n.Value.(*ast.ListData)
	num := 1
	if data != nil {
		num = data.Start
		if num == 0 {
			num = 1
		}
	}
	for item := n.FirstChild; item != nil; item = item.Next {
		marker, width := s.listMarker(data, num)
		indent := strings.Repeat(" ", width)
		s.wrapBlock(indent, marker, func() { s.renderChildren(item) })
		num++
	}
}

func (s *state) listMarker(data *ast.ListData, num int) (marker string, indentWidth int) {
	if data == nil || data.Kind == ast.ListKindBullet {
		bullet := byte(s.opts.ListStyle)
		if data != nil && data.BulletChar != 0 {
			bullet = data.BulletChar
		}
		if bullet == 0 {
			bullet = '-'
		}
		marker = string(bullet) + " "
		return marker, len(marker)
	}
	delim := byte('.')
	if data.Delimiter != 0 {
		delim = data.Delimiter
	}
	marker = strconv.Itoa(num) + string(delim) + " "
	return marker, len(marker)
}

func (s *state) renderTable(n *ast.Node) {
	data, _ := n.Value.(*ast.TableData)
	row := n.FirstChild
	if row == nil {
		return
	}
	s.renderTableRow(row)
	s.out.WriteByte('\n')
	s.write(s.alignmentRow(data))
	for row = row.Next; row != nil; row = row.Next {
		s.out.WriteByte('\n')
		s.renderTableRow(row)
	}
	s.closeBlock()
}

func (s *state) alignmentRow(data *ast.TableData) string {
	var b strings.Builder
	b.WriteByte('|')
	aligns := []ast.Alignment{ast.AlignNone}
	if data != nil {
		aligns = data.Alignments
	}
	for _, a := range aligns {
		switch a {
		case ast.AlignLeft:
			b.WriteString(":---|")
		case ast.AlignCenter:
			b.WriteString(":---:|")
		case ast.AlignRight:
			b.WriteString("---:|")
		default:
			b.WriteString("---|")
		}
	}
	return b.String()
}

func (s *state) renderTableRow(row *ast.Node) {
	s.write("|")
	for cell := row.FirstChild; cell != nil; cell = cell.Next {
		s.renderInlineChildren(cell)
		s.out.WriteString(" |")
	}
}

func (s *state) renderFootnoteDefinitionBlock(n *ast.Node) {
	data, _ := n.Value.(*ast.FootnoteDefinitionData)
	name := ""
	if data != nil {
		name = data.Name
	}
	s.wrapBlock("    ", "[^"+name+"]: ", func() { s.renderChildren(n) })
}

func (s *state) renderInlineChildren(n *ast.Node) {
	for c := n.FirstChild; c != nil; c = c.Next {
		s.renderInline(c)
	}
}

func (s *state) renderInline(n *ast.Node) {
	switch n.Kind {
	case ast.KindText:
		s.text(n.Literal, true)

	case ast.KindSoftBreak:
		s.out.WriteByte('\n')
		s.write("")

	case ast.KindHardBreak:
		s.out.WriteString("\\\n")
		s.write("")

	case ast.KindCodeSpan:
		fence := backtickFence(n.Literal, 1)
		pad := ""
		if strings.HasPrefix(n.Literal, "`") || strings.HasSuffix(n.Literal, "`") || n.Literal == "" {
			pad = " "
		}
		s.write(fence + pad + n.Literal + pad + fence)

	case ast.KindEmphasis:
		s.write("_")
		s.renderInlineChildren(n)
		s.out.WriteString("_")

	case ast.KindStrong:
		s.write("**")
		s.renderInlineChildren(n)
		s.out.WriteString("**")

	case ast.KindStrikethrough:
		s.write("~~")
		s.renderInlineChildren(n)
		s.out.WriteString("~~")

	case ast.KindUnderline:
		s.write("++")
		s.renderInlineChildren(n)
		s.out.WriteString("++")

	case ast.KindSuperscript:
		s.write("^")
		s.renderInlineChildren(n)
		s.out.WriteString("^")

	case ast.KindSubscript:
		s.write("~")
		s.renderInlineChildren(n)
		s.out.WriteString("~")

	case ast.KindHighlight:
		s.write("==")
		s.renderInlineChildren(n)
		s.out.WriteString("==")

	case ast.KindSpoiler:
		s.write("||")
		s.renderInlineChildren(n)
		s.out.WriteString("||")

	case ast.KindLink:
		s.renderLinkInline(n, false)

	case ast.KindImage:
		s.write("!")
		s.renderLinkInline(n, true)

	case ast.KindWikiLink:
		data, _ := n.Value.(*ast.WikiLinkData)
		target := ""
		if data != nil {
			target = data.Target
		}
		s.write("[[" + target + "]]")

	case ast.KindFootnoteReference:
		data, _ := n.Value.(*ast.FootnoteReferenceData)
		name := ""
		if data != nil {
			name = data.Name
		}
		s.write("[^" + name + "]")

	case ast.KindMathInline:
		data, _ := n.Value.(*ast.MathData)
		s.write("$" + data.Literal + "$")

	case ast.KindMathDisplay:
		data, _ := n.Value.(*ast.MathData)
		s.write("$$" + data.Literal + "$$")

	case ast.KindRawHTML:
		s.text(n.Literal, false)

	case ast.KindEscaped:
		data, _ := n.Value.(*ast.EscapedData)
		if data != nil {
			s.write("\\" + string(data.Char))
		}

	case ast.KindShortcode:
		data, _ := n.Value.(*ast.ShortcodeData)
		if data != nil {
			s.write(":" + data.Name + ":")
		}

	default:
		s.renderInlineChildren(n)
	}
}

// renderLinkInline writes the inline-link form; image writes the leading
// "!" itself before delegating here for the shared "[text](dest "title")"
// shape. Reference-form links (data.ReferenceLabel set) are still emitted
// inline, since link reference definitions are not re-serialized.
func (s *state) renderLinkInline(n *ast.Node, isImage bool) {
	data, _ := n.Value.(*ast.LinkData)
	dest, title := "", ""
	if data != nil {
		dest, title = data.Destination, data.Title
	}
	s.write("[")
	if isImage {
		s.out.WriteString(entity.EscapeHTML(flattenText(n)))
	} else {
		s.renderInlineChildren(n)
	}
	s.out.WriteString("](")
	s.out.WriteString(escapeLinkDestination(dest))
	if title != "" {
		s.out.WriteString(` "` + escapeLinkTitle(title) + `"`)
	}
	s.out.WriteString(")")
}

func escapeLinkDestination(dest string) string {
	if dest == "" {
		return "<>"
	}
	if strings.ContainsAny(dest, " \t\n()") {
		return "<" + strings.ReplaceAll(strings.ReplaceAll(dest, "\\", "\\\\"), ">", "\\>") + ">"
	}
	return strings.ReplaceAll(dest, "(", "\\(")
}

func escapeLinkTitle(title string) string {
	return strings.ReplaceAll(strings.ReplaceAll(title, "\\", "\\\\"), `"`, `\"`)
}

func flattenText(n *ast.Node) string {
	var b strings.Builder
	var walk func(*ast.Node)
	walk = func(c *ast.Node) {
		if c.Kind == ast.KindText || c.Kind == ast.KindCodeSpan {
			b.WriteString(c.Literal)
		}
		for ch := c.FirstChild; ch != nil; ch = ch.Next {
			walk(ch)
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.Next {
		walk(ch)
	}
	return b.String()
}
