// Package xml implements the structural XML dump emitter: a pre-order
// walk over the AST that writes one element per node, named after
// ast.Kind.String(), with per-variant attributes carrying the node's
// Value payload. Grounded on this module's render/html package's
// entering/leaving Walk dispatch, adapted from tag-per-HTML-semantics to
// tag-per-AST-node-kind.
package xml

import (
	"io"
	"strconv"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/options"
)

// Render writes doc as a structural XML document into w according to opts.
func Render(w io.Writer, doc *ast.Node, opts options.RenderOptions) error {
	out, err := RenderString(doc, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString renders doc as a structural XML document and returns it
// directly.
func RenderString(doc *ast.Node, opts options.RenderOptions) (string, error) {
	r := &renderer{opts: opts}
	r.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	r.buf.WriteString(`<!DOCTYPE document SYSTEM "CommonMark.dtd">` + "\n")
	if err := ast.Walk(doc, r.visit); err != nil {
		return "", err
	}
	r.buf.WriteByte('\n')
	return r.buf.String(), nil
}

type renderer struct {
	opts  options.RenderOptions
	buf   strings.Builder
	depth int
}

func (r *renderer) visit(n *ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.indent()
		r.buf.WriteString("<" + n.Kind.String())
		r.attrs(n)
		if r.opts.Sourcepos {
			r.buf.WriteString(` sourcepos="` + sourcepos(n) + `"`)
		}
		if n.FirstChild == nil && n.Literal == "" {
			r.buf.WriteString(" />")
			r.buf.WriteByte('\n')
			return ast.WalkContinue, nil
		}
		r.buf.WriteString(">")
		if n.Literal != "" {
			r.buf.WriteString(entity.EscapeHTML(n.Literal))
		}
		if n.FirstChild != nil {
			r.buf.WriteByte('\n')
			r.depth++
		}
	} else {
		if n.FirstChild == nil && n.Literal == "" {
			return ast.WalkContinue, nil
		}
		if n.FirstChild != nil {
			r.depth--
			r.indent()
		}
		r.buf.WriteString("</" + n.Kind.String() + ">\n")
	}
	return ast.WalkContinue, nil
}

func (r *renderer) indent() {
	r.buf.WriteString(strings.Repeat("  ", r.depth))
}

func sourcepos(n *ast.Node) string {
	return strconv.Itoa(n.Start.Line) + ":" + strconv.Itoa(n.Start.Column) + "-" +
		strconv.Itoa(n.End.Line) + ":" + strconv.Itoa(n.End.Column)
}

// attrs writes the variant-specific attributes carried in n.Value; each
// case mirrors the payload type documented in ast/value.go.
func (r *renderer) attrs(n *ast.Node) {
	switch data := n.Value.(type) {
	case *ast.ListData:
		kind := "bullet"
		if data.Kind == ast.ListKindOrdered {
			kind = "ordered"
		}
		r.attr("type", kind)
		r.attr("tight", strconv.FormatBool(data.Tight))
		if data.Kind == ast.ListKindOrdered {
			r.attr("start", strconv.Itoa(data.Start))
			r.attr("delimiter", string(data.Delimiter))
		} else {
			r.attr("bulletChar", string(data.BulletChar))
		}

	case *ast.ListItemData:
		if data.Task != nil {
			r.attr("checked", strconv.FormatBool(data.Task.Checked))
		}

	case *ast.HeadingData:
		r.attr("level", strconv.Itoa(data.Level))
		if data.ID != "" {
			r.attr("id", data.ID)
		}

	case *ast.CodeBlockData:
		r.attr("fenced", strconv.FormatBool(data.Fenced))
		if data.Info != "" {
			r.attr("info", data.Info)
		}

	case *ast.HTMLBlockData:
		r.attr("blockType", strconv.Itoa(data.BlockType))

	case *ast.LinkData:
		r.attr("destination", data.Destination)
		if data.Title != "" {
			r.attr("title", data.Title)
		}

	case *ast.WikiLinkData:
		r.attr("target", data.Target)

	case *ast.TableData:
		var aligns []string
		for _, a := range data.Alignments {
			aligns = append(aligns, alignName(a))
		}
		r.attr("alignments", strings.Join(aligns, ","))

	case *ast.TableCellData:
		r.attr("header", strconv.FormatBool(data.Header))
		r.attr("align", alignName(data.Alignment))

	case *ast.AlertData:
		r.attr("kind", data.Kind.String())
		if data.Title != "" {
			r.attr("title", data.Title)
		}

	case *ast.FootnoteDefinitionData:
		r.attr("name", data.Name)
		r.attr("number", strconv.Itoa(data.Number))

	case *ast.FootnoteReferenceData:
		r.attr("name", data.Name)
		r.attr("number", strconv.Itoa(data.Number))

	case *ast.MathData:
		// Literal is rendered as element content, not an attribute.

	case *ast.ShortcodeData:
		r.attr("name", data.Name)
		if data.Emoji != "" {
			r.attr("emoji", data.Emoji)
		}

	case *ast.DescriptionItemData:
		r.attr("tight", strconv.FormatBool(data.Tight))

	case *ast.EscapedData:
		r.attr("char", string(data.Char))
	}
}

func (r *renderer) attr(name, value string) {
	r.buf.WriteString(" " + name + `="` + entity.EscapeHTML(value) + `"`)
}

func alignName(a ast.Alignment) string {
	switch a {
	case ast.AlignLeft:
		return "left"
	case ast.AlignCenter:
		return "center"
	case ast.AlignRight:
		return "right"
	default:
		return "none"
	}
}
