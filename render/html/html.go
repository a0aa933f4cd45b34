// Package html implements the HTML emitter: a pre-order, entering/leaving
// walk over the AST that writes the CommonMark/GFM-defined HTML for each
// node kind. Safe mode (the default) replaces raw HTML with a stub
// comment and blanks dangerous link/image destinations; escape mode
// HTML-escapes raw HTML instead of stubbing it; unsafe mode passes it
// through verbatim. Grounded on `other_examples`' zombiezen
// `html_renderer.go` (entering/leaving dispatch, FilterTag-style tag
// filtering over `golang.org/x/net/html/atom`) and the teacher's
// `model/to_dom.go` (atom-table tag lookups).
package html

import (
	"io"
	"strconv"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/internal/normalize"
	"github.com/shodgson/commonmark-go/options"
)

// Render writes doc as HTML into w according to opts.
func Render(w io.Writer, doc *ast.Node, opts options.RenderOptions) error {
	out, err := RenderString(doc, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString renders doc as HTML and returns it directly; this is the
// convenience path markdown.MarkdownToHTML uses.
func RenderString(doc *ast.Node, opts options.RenderOptions) (string, error) {
	r := &renderer{opts: opts, slugs: normalize.NewSlugTable(opts.HeaderIDPrefix)}
	if err := ast.Walk(doc, r.visit); err != nil {
		return "", err
	}
	return r.buf.String(), nil
}

type renderer struct {
	opts  options.RenderOptions
	buf   strings.Builder
	slugs *normalize.SlugTable

	// tightListDepth counts how many enclosing tight lists the current
	// position is inside; a Paragraph directly inside a tight list item
	// is rendered without its <p> wrapper.
	tightListDepth int
	prevRune       rune

	// tableBodyOpen tracks whether the current table has opened a <tbody>
	// yet; it stays false (and no <tbody>/</tbody> is emitted) for a
	// table with a header row and no body rows.
	tableBodyOpen bool
}

func (r *renderer) visit(n *ast.Node, entering bool) (ast.WalkStatus, error) {
	if override, ok := r.opts.NodeOverrides[n.Kind.String()]; ok {
		directive := override(&options.RenderContext{
			Write:    func(s string) { r.buf.WriteString(s) },
			UserData: r.opts.UserData,
		}, entering)
		if directive.SkipChildren {
			return ast.WalkSkipChildren, nil
		}
		if !directive.RenderChildren {
			return ast.WalkContinue, nil
		}
	}

	switch n.Kind {
	case ast.KindDocument:
		// no wrapper output

	case ast.KindParagraph:
		if r.inTightList(n) {
			break
		}
		if entering {
			r.cr()
			r.tag("p", n, false)
		} else {
			r.write("</p>")
			r.cr()
		}

	case ast.KindBlockQuote, ast.KindMultilineBlockQuote:
		if entering {
			r.cr()
			r.tag("blockquote", n, false)
			r.cr()
		} else {
			r.cr()
			r.write("</blockquote>")
			r.cr()
		}

	case ast.KindAlert:
		r.renderAlert(n, entering)

	case ast.KindList:
		r.renderList(n, entering)

	case ast.KindListItem:
		r.renderListItem(n, entering)

	case ast.KindDescriptionList:
		if entering {
			r.cr()
			r.write("<dl>")
			r.cr()
		} else {
			r.write("</dl>")
			r.cr()
		}

	case ast.KindDescriptionItem:
		// transparent: its Term/Details children render themselves

	case ast.KindDescriptionTerm:
		if entering {
			r.write("<dt>")
		} else {
			r.write("</dt>")
			r.cr()
		}

	case ast.KindDescriptionDetails:
		if entering {
			r.write("<dd>")
		} else {
			r.write("</dd>")
			r.cr()
		}

	case ast.KindHeading:
		r.renderHeading(n, entering)

	case ast.KindThematicBreak:
		r.cr()
		r.tag("hr", n, true)
		r.cr()

	case ast.KindCodeBlock:
		if entering {
			r.renderCodeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindHTMLBlock:
		if entering {
			r.renderHTMLBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindLinkReferenceDefinition:
		return ast.WalkSkipChildren, nil

	case ast.KindTable:
		r.renderTable(n, entering)

	case ast.KindTableRow:
		r.renderTableRow(n, entering)

	case ast.KindTableCell:
		r.renderTableCell(n, entering)

	case ast.KindFootnoteDefinition:
		r.renderFootnoteDefinition(n, entering)

	case ast.KindText:
		if entering {
			r.writeEscapedText(n.Literal)
		}

	case ast.KindSoftBreak:
		if entering {
			if r.opts.Hardbreaks {
				r.write("<br />\n")
			} else {
				r.write("\n")
			}
		}

	case ast.KindHardBreak:
		if entering {
			r.write("<br />\n")
		}

	case ast.KindCodeSpan:
		if entering {
			r.write("<code>")
			r.write(entity.EscapeHTML(n.Literal))
			r.write("</code>")
		}

	case ast.KindEmphasis:
		r.wrap("em", entering)
	case ast.KindStrong:
		r.wrap("strong", entering)
	case ast.KindStrikethrough:
		r.wrap("del", entering)
	case ast.KindUnderline:
		r.wrap("u", entering)
	case ast.KindSuperscript:
		r.wrap("sup", entering)
	case ast.KindSubscript:
		r.wrap("sub", entering)
	case ast.KindHighlight:
		r.wrap("mark", entering)

	case ast.KindSpoiler:
		if entering {
			r.write(`<span class="spoiler">`)
		} else {
			r.write("</span>")
		}

	case ast.KindLink:
		r.renderLink(n, entering)
	case ast.KindImage:
		r.renderImage(n, entering)
		// The children are already flattened into the alt attribute.
		return ast.WalkSkipChildren, nil
	case ast.KindWikiLink:
		r.renderWikiLink(n, entering)

	case ast.KindFootnoteReference:
		if entering {
			r.renderFootnoteReference(n)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindMathInline:
		if entering {
			data, _ := n.Value.(*ast.MathData)
			r.write(`<span class="math math-inline">\(`)
			r.write(entity.EscapeHTML(data.Literal))
			r.write(`\)</span>`)
		}

	case ast.KindMathDisplay:
		if entering {
			data, _ := n.Value.(*ast.MathData)
			r.write(`<span class="math math-display">\[`)
			r.write(entity.EscapeHTML(data.Literal))
			r.write(`\]</span>`)
		}

	case ast.KindRawHTML:
		if entering {
			r.renderRawHTML(n.Literal)
		}

	case ast.KindEscaped:
		if entering {
			data, _ := n.Value.(*ast.EscapedData)
			if r.opts.EscapedCharSpans {
				r.write(`<span data-escaped-char>`)
				r.write(entity.EscapeHTML(string(data.Char)))
				r.write(`</span>`)
			} else {
				r.write(entity.EscapeHTML(string(data.Char)))
			}
		}

	case ast.KindShortcode:
		if entering {
			data, _ := n.Value.(*ast.ShortcodeData)
			if data != nil && data.Emoji != "" {
				r.write(data.Emoji)
			} else if data != nil {
				r.write(":" + data.Name + ":")
			}
		}
	}

	return ast.WalkContinue, nil
}

func (r *renderer) write(s string) {
	if s == "" {
		return
	}
	r.buf.WriteString(s)
	r.prevRune = []rune(s)[len([]rune(s))-1]
}

// cr ensures the buffer ends with a newline, without adding a blank line.
func (r *renderer) cr() {
	s := r.buf.String()
	if len(s) > 0 && s[len(s)-1] != '\n' {
		r.buf.WriteByte('\n')
		r.prevRune = '\n'
	}
}

func (r *renderer) wrap(tag string, entering bool) {
	if entering {
		r.write("<" + tag + ">")
	} else {
		r.write("</" + tag + ">")
	}
}

// tag writes an opening tag, optionally self-closing, and a sourcepos
// attribute when enabled.
func (r *renderer) tag(name string, n *ast.Node, selfClosing bool) {
	r.buf.WriteString("<" + name)
	if r.opts.Sourcepos {
		r.buf.WriteString(` data-sourcepos="` + sourcepos(n) + `"`)
	}
	if selfClosing {
		r.buf.WriteString(" />")
	} else {
		r.buf.WriteString(">")
	}
	if r.buf.Len() > 0 {
		b := r.buf.String()
		r.prevRune = []rune(b)[len([]rune(b))-1]
	}
}

func sourcepos(n *ast.Node) string {
	return strconv.Itoa(n.Start.Line) + ":" + strconv.Itoa(n.Start.Column) + "-" +
		strconv.Itoa(n.End.Line) + ":" + strconv.Itoa(n.End.Column)
}

func (r *renderer) writeEscapedText(s string) {
	s = strings.ReplaceAll(s, "\x00", "�")
	if r.opts.SmartPunctuation {
		s = entity.SmartPunctuation(s, r.prevRune)
	}
	r.write(entity.EscapeHTML(s))
}

func (r *renderer) inTightList(n *ast.Node) bool {
	item := n.Parent
	if item == nil || item.Kind != ast.KindListItem {
		return false
	}
	list := item.Parent
	if list == nil || list.Kind != ast.KindList {
		return false
	}
	data, _ := list.Value.(*ast.ListData)
	return data != nil && data.Tight
}
