package html

import (
	"strconv"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/scanner"
)

func (r *renderer) renderLink(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.LinkData)
	if entering {
		dest := ""
		title := ""
		if data != nil {
			dest = data.Destination
			title = data.Title
		}
		r.buf.WriteString("<a href=\"")
		r.writeDestination(dest)
		r.buf.WriteString("\"")
		if title != "" {
			r.buf.WriteString(` title="` + entity.EscapeHTML(title) + `"`)
		}
		r.buf.WriteString(">")
	} else {
		r.write("</a>")
	}
}

func (r *renderer) writeDestination(dest string) {
	if !r.opts.Unsafe && scanner.DangerousURL(dest) {
		return
	}
	r.buf.WriteString(entity.EscapeURL(dest))
}

func (r *renderer) renderImage(n *ast.Node, entering bool) {
	if !entering {
		return
	}
	data, _ := n.Value.(*ast.LinkData)
	dest, title := "", ""
	if data != nil {
		dest, title = data.Destination, data.Title
	}
	alt := flattenText(n)

	if r.opts.FigureImage {
		r.write("<figure>")
	}
	r.buf.WriteString(`<img src="`)
	r.writeDestination(dest)
	r.buf.WriteString(`" alt="`)
	r.buf.WriteString(entity.EscapeHTML(alt))
	r.buf.WriteString(`"`)
	if title != "" {
		r.buf.WriteString(` title="` + entity.EscapeHTML(title) + `"`)
	}
	r.buf.WriteString(" />")
	if r.opts.FigureImage {
		if title != "" {
			r.write("<figcaption>" + entity.EscapeHTML(title) + "</figcaption>")
		}
		r.write("</figure>")
	}
}

func (r *renderer) renderWikiLink(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.WikiLinkData)
	if entering {
		target := ""
		if data != nil {
			target = data.Target
		}
		r.buf.WriteString(`<a href="`)
		r.buf.WriteString(entity.EscapeURL(target))
		r.buf.WriteString(`" data-wikilink="true">`)
	} else {
		r.write("</a>")
	}
}

func (r *renderer) renderFootnoteReference(n *ast.Node) {
	data, _ := n.Value.(*ast.FootnoteReferenceData)
	if data == nil {
		return
	}
	id := "fnref-" + strconv.Itoa(data.Number)
	if data.BackrefIndex > 1 {
		id += "-" + strconv.Itoa(data.BackrefIndex)
	}
	href := "#fn-" + strconv.Itoa(data.Number)
	r.write(`<sup class="footnote-ref"><a href="` + href + `" id="` + id + `">` + strconv.Itoa(data.Number) + `</a></sup>`)
}

func (r *renderer) renderRawHTML(literal string) {
	switch {
	case r.opts.Unsafe:
		if r.opts.Tagfilter {
			literal = filterLeadingTag(literal)
		}
		r.write(literal)
	case r.opts.Escape:
		r.write(entity.EscapeHTML(literal))
	default:
		r.write("<!-- raw HTML omitted -->")
	}
}
