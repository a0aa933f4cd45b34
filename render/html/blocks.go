package html

import (
	"strconv"
	"strings"

	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
)

func (r *renderer) renderList(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.ListData)
	tag := "ul"
	if data != nil && data.Kind == ast.ListKindOrdered {
		tag = "ol"
	}
	if entering {
		r.cr()
		r.buf.WriteString("<" + tag)
		if tag == "ol" && data != nil && data.Start != 1 {
			r.buf.WriteString(` start="` + strconv.Itoa(data.Start) + `"`)
		}
		r.buf.WriteString(">")
		r.cr()
		if data != nil && data.Tight {
			r.tightListDepth++
		}
	} else {
		if data != nil && data.Tight {
			r.tightListDepth--
		}
		r.write("</" + tag + ">")
		r.cr()
	}
}

func (r *renderer) renderListItem(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.ListItemData)
	if entering {
		r.cr()
		if data != nil && data.Task != nil {
			classes := ""
			if r.opts.TaskListClasses {
				classes = ` class="task-list-item"`
			}
			r.buf.WriteString("<li" + classes + ">")
			checked := ""
			if data.Task.Checked {
				checked = " checked=\"\""
			}
			disabled := ""
			if r.opts.TaskListClasses {
				disabled = ` class="task-list-item-checkbox"`
			}
			r.buf.WriteString(`<input type="checkbox" disabled=""` + disabled + checked + " />")
		} else {
			r.write("<li>")
		}
	} else {
		r.write("</li>")
		r.cr()
	}
}

func (r *renderer) renderHeading(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.HeadingData)
	level := 1
	if data != nil {
		level = data.Level
	}
	tag := "h" + strconv.Itoa(level)
	if entering {
		r.cr()
		r.buf.WriteString("<" + tag)
		if r.opts.HeaderIDs {
			id := r.slugs.Assign(flattenText(n))
			if data != nil {
				data.ID = id
			}
			r.buf.WriteString(` id="` + id + `"`)
		}
		r.buf.WriteString(">")
	} else {
		r.write("</" + tag + ">")
		r.cr()
	}
}

func (r *renderer) renderCodeBlock(n *ast.Node) {
	data, _ := n.Value.(*ast.CodeBlockData)
	info := ""
	if data != nil {
		info = data.Info
	}
	lang := firstWord(info)

	r.cr()
	if lang != "" {
		if highlighted, ok := r.tryHighlight(lang, n.Literal); ok {
			r.write(highlighted)
			r.cr()
			return
		}
	}

	if lang != "" && r.opts.GitHubPreLang {
		r.write(`<pre lang="` + entity.EscapeHTML(lang) + `"><code>`)
	} else if lang != "" {
		infoAttr := lang
		if r.opts.FullInfoString {
			infoAttr = info
		}
		r.write(`<pre><code class="language-` + entity.EscapeHTML(infoAttr) + `">`)
	} else {
		r.write("<pre><code>")
	}
	body := n.Literal
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	r.write(entity.EscapeHTML(body))
	r.write("</code></pre>")
	r.cr()
}

func (r *renderer) tryHighlight(lang, body string) (string, bool) {
	if r.opts.SyntaxHighlighter == nil {
		return "", false
	}
	return r.opts.SyntaxHighlighter.Highlight(lang, body)
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

func (r *renderer) renderHTMLBlock(n *ast.Node) {
	r.cr()
	switch {
	case r.opts.Unsafe:
		literal := n.Literal
		if r.opts.Tagfilter {
			literal = filterLeadingTag(literal)
		}
		r.write(literal)
	case r.opts.Escape:
		r.write(entity.EscapeHTML(n.Literal))
	default:
		r.write("<!-- raw HTML omitted -->")
	}
	r.write("\n")
}

func (r *renderer) renderAlert(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.AlertData)
	if entering {
		kind := strings.ToLower(data.Kind.String())
		r.cr()
		r.buf.WriteString(`<div class="markdown-alert markdown-alert-` + kind + `">`)
		r.cr()
		title := data.Kind.String()
		if data.IsCustomTitled && data.Title != "" {
			title = data.Title
		}
		r.write(`<p class="markdown-alert-title">`)
		r.write(entity.EscapeHTML(title))
		r.write("</p>")
		r.cr()
	} else {
		r.write("</div>")
		r.cr()
	}
}

func (r *renderer) renderTable(n *ast.Node, entering bool) {
	if entering {
		r.cr()
		r.write("<table>")
		r.cr()
		r.tableBodyOpen = false
	} else {
		if r.tableBodyOpen {
			r.write("</tbody>")
			r.cr()
		}
		r.write("</table>")
		r.cr()
	}
}

// renderTableRow wraps the header row in <thead> and the first body row's
// opening tag in <tbody>, matching the GFM table HTML the reference
// renderers produce: <tbody> is entirely omitted when a table has no body
// rows.
func (r *renderer) renderTableRow(n *ast.Node, entering bool) {
	header := isHeaderRow(n)
	if entering {
		if header {
			r.write("<thead>")
			r.cr()
		} else if !r.tableBodyOpen {
			r.write("<tbody>")
			r.cr()
			r.tableBodyOpen = true
		}
		r.write("<tr>")
		r.cr()
	} else {
		r.write("</tr>")
		r.cr()
		if header {
			r.write("</thead>")
			r.cr()
		}
	}
}

func isHeaderRow(row *ast.Node) bool {
	if row.FirstChild == nil {
		return false
	}
	data, _ := row.FirstChild.Value.(*ast.TableCellData)
	return data != nil && data.Header
}

func alignAttr(a ast.Alignment) string {
	switch a {
	case ast.AlignLeft:
		return "left"
	case ast.AlignCenter:
		return "center"
	case ast.AlignRight:
		return "right"
	default:
		return ""
	}
}

func (r *renderer) renderTableCell(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.TableCellData)
	tagName := "td"
	if data != nil && data.Header {
		tagName = "th"
	}
	if entering {
		r.buf.WriteString("<" + tagName)
		if data != nil {
			if align := alignAttr(data.Alignment); align != "" {
				r.buf.WriteString(` align="` + align + `"`)
			}
		}
		r.buf.WriteString(">")
	} else {
		r.write("</" + tagName + ">")
	}
}

// renderFootnoteDefinition wraps a run of consecutive footnote-definition
// document children in a single <section>/<ol>, opening on the first of
// the run and closing on the last, so the definitions appear together
// once, in their post-renumbering order.
func (r *renderer) renderFootnoteDefinition(n *ast.Node, entering bool) {
	data, _ := n.Value.(*ast.FootnoteDefinitionData)
	first := n.Prev == nil || n.Prev.Kind != ast.KindFootnoteDefinition
	last := n.Next == nil || n.Next.Kind != ast.KindFootnoteDefinition

	if entering {
		if first {
			r.cr()
			r.write(`<section class="footnotes" data-footnotes>`)
			r.cr()
			r.write("<ol>")
			r.cr()
		}
		id := ""
		if data != nil {
			id = "fn-" + strconv.Itoa(data.Number)
		}
		r.write(`<li id="` + id + `">`)
		r.cr()
	} else {
		r.writeFootnoteBackref(data)
		r.write("</li>")
		r.cr()
		if last {
			r.write("</ol>")
			r.cr()
			r.write("</section>")
			r.cr()
		}
	}
}

func (r *renderer) writeFootnoteBackref(data *ast.FootnoteDefinitionData) {
	if data == nil {
		return
	}
	href := "#fnref-" + strconv.Itoa(data.Number)
	r.write(`<a href="` + href + `" class="footnote-backref">↩</a>`)
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
