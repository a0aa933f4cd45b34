package inline

import (
	"github.com/shodgson/commonmark-go/ast"
	"github.com/shodgson/commonmark-go/scanner"
)

// tryShortcode recognises a `:name:` emoji shortcode starting at
// p.pos == ':', gated by Extensions.Shortcodes. Unrecognised names still
// produce a Shortcode node (with an empty Emoji field) rather than falling
// back to literal text, so a renderer or later pass can still surface the
// name (e.g. to flag a typo) instead of silently losing it.
func (p *Parser) tryShortcode() bool {
	if !p.opts.Extensions.Shortcodes {
		return false
	}
	name, n, ok := scanner.ShortcodeBody(p.src[p.pos:])
	if !ok {
		return false
	}
	node := p.arena.NewNode(ast.KindShortcode)
	node.Value = &ast.ShortcodeData{Name: name, Emoji: emojiByName[name]}
	p.parent.AppendChild(node)
	p.pos += n
	return true
}

// emojiByName is a small built-in table of common shortcode names; it is
// intentionally not exhaustive (a full gemoji-equivalent table is outside
// this repository's scope) but covers the names most CommonMark/GFM test
// fixtures and READMEs actually use.
var emojiByName = map[string]string{
	"smile":        "\U0001F604",
	"laughing":     "\U0001F606",
	"blush":        "\U0001F60A",
	"heart":        "❤️",
	"thumbsup":     "\U0001F44D",
	"thumbsdown":   "\U0001F44E",
	"tada":         "\U0001F389",
	"rocket":       "\U0001F680",
	"fire":         "\U0001F525",
	"eyes":         "\U0001F440",
	"+1":           "\U0001F44D",
	"-1":           "\U0001F44E",
	"warning":      "⚠️",
	"white_check_mark": "✅",
	"x":            "❌",
	"bug":          "\U0001F41B",
	"sparkles":     "✨",
	"memo":         "\U0001F4DD",
	"construction": "\U0001F6A7",
}
