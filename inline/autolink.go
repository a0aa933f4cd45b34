package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/internal/entity"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryAngleAutolink recognises `<scheme:...>` and `<email>` starting at
// p.src[p.pos] == '<'. On success it appends a Link node and advances
// p.pos past the closing '>'.
func (p *Parser) tryAngleAutolink() bool {
	// Angle-bracket autolinks are bare CommonMark, not an extension; GFM's
	// extended bare-URL/email form is gated separately by
	// Extensions.Autolink in tryBareAutolink.
	body := p.src[p.pos+1:]
	if n, ok := scanner.AutolinkURI(body); ok {
		uri := string(body[:n-1])
		p.appendAutolink(uri, uri)
		p.pos += n + 1
		return true
	}
	if n, ok := scanner.AutolinkEmail(body); ok {
		addr := string(body[:n-1])
		p.appendAutolink("mailto:"+addr, addr)
		p.pos += n + 1
		return true
	}
	return false
}

func (p *Parser) appendAutolink(dest, text string) {
	link := p.arena.NewNode(ast.KindLink)
	dest = entity.EscapeURL(entity.Decode(dest))
	if p.opts.URLRewriter != nil {
		dest = p.opts.URLRewriter(dest)
	}
	link.Value = &ast.LinkData{Destination: dest}
	txt := p.arena.NewNode(ast.KindText)
	txt.Literal = text
	link.AppendChild(txt)
	p.parent.AppendChild(link)
}

// tryBareAutolink recognises a GFM extended autolink (bare URL or email,
// no angle brackets) starting at p.pos. It returns false at once unless
// Extensions.Autolink is on and the preceding rune is not alphanumeric
// (a bare URL must start a word).
func (p *Parser) tryBareAutolink() bool {
	if !p.opts.Extensions.Autolink {
		return false
	}
	before := runeBefore(p.src, p.pos)
	if isWordRune(before) {
		return false
	}
	rest := p.src[p.pos:]

	if n, ok := matchBareURLScheme(rest, p.opts.Tweaks.RelaxedAutolinks); ok {
		bodyLen, bok := scanner.BareURLBody(rest)
		if !bok || bodyLen < n {
			return false
		}
		trimmed := scanner.TrimAutolinkTrailer(rest[:bodyLen])
		if trimmed == 0 {
			return false
		}
		uri := string(rest[:trimmed])
		display := uri
		if !hasScheme(uri) {
			uri = "http://" + uri
		}
		p.appendAutolink(uri, display)
		p.pos += trimmed
		return true
	}

	if n, ok := scanner.BareEmail(rest); ok {
		trimmed := scanner.TrimAutolinkTrailer(rest[:n])
		if trimmed == 0 {
			return false
		}
		addr := string(rest[:trimmed])
		p.appendAutolink("mailto:"+addr, addr)
		p.pos += trimmed
		return true
	}
	return false
}

func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == ':':
			return i > 0
		case s[i] >= 'a' && s[i] <= 'z', s[i] >= 'A' && s[i] <= 'Z', s[i] >= '0' && s[i] <= '9',
			s[i] == '+', s[i] == '-', s[i] == '.':
			continue
		default:
			return false
		}
	}
	return false
}

// matchBareURLScheme reports whether rest begins with one of the trigger
// prefixes (default mode: www./http://, https://, ftp://; relaxed mode:
// any CommonMark-shaped scheme), returning the trigger's length.
func matchBareURLScheme(rest []byte, relaxed bool) (int, bool) {
	if relaxed {
		if n, ok := scanner.RelaxedSchemePrefix(rest); ok {
			return n, true
		}
	}
	for _, scheme := range scanner.BareAutolinkSchemes {
		if len(rest) >= len(scheme) && string(rest[:len(scheme)]) == scheme {
			return len(scheme), true
		}
	}
	return 0, false
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return false
	}
}
