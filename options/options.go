// Package options collects the parse-time and render-time configuration
// bundles shared by block, inline, render/* and markdown. It sits below
// all of those in the import graph (it imports no package of this module) so that every
// package that needs to consult "is extension X enabled" can do so without
// creating an import cycle back through the top-level markdown package.
package options

// Extensions toggles the GFM and non-GFM constructs the block and inline
// parsers recognise. The zero value enables none of them (bare
// CommonMark); GFM (and DefaultGFM) turns on the common GFM set.
type Extensions struct {
	Strikethrough        bool
	Tagfilter             bool
	Table                 bool
	Autolink              bool
	TaskList              bool
	Superscript           bool
	Subscript             bool
	Footnotes             bool
	DescriptionLists      bool
	MultilineBlockQuotes  bool
	Math                  bool
	WikiLinks             bool
	Underline             bool
	Spoiler               bool
	Greentext             bool
	Alerts                bool
	Highlight             bool
	CJKFriendlyEmphasis   bool
	Shortcodes            bool
	FrontMatter           bool
}

// GFM returns the Extensions bundle for "GitHub Flavored Markdown": the
// four constructs the GFM spec itself defines, plus task lists (which GFM
// also documents even though it is technically a superset addition).
func GFM() Extensions {
	return Extensions{
		Strikethrough: true,
		Tagfilter:     true,
		Table:         true,
		Autolink:      true,
		TaskList:      true,
	}
}

// ParserTweaks are behavioural knobs that are not "is a construct enabled"
// but "how should an enabled construct behave".
type ParserTweaks struct {
	SmartPunctuation           bool
	RelaxedTaskListCharacters  bool
	RelaxedAutolinks           bool
	IgnoreSetext               bool
	IgnoreEmptyLinks           bool
	DefaultInfoString          string
	FrontMatterDelimiter       string
	TaskListInTable            bool
	WikiLinkTitleAfterPipe     bool
}

// DefaultFrontMatterDelimiter is used when ParserTweaks.FrontMatterDelimiter
// is empty but Extensions.FrontMatter is on.
const DefaultFrontMatterDelimiter = "---"

// Limits bounds recursive/iterative work the parser is willing to do on a
// single input, per spec §7's "Resource limits" note.
type Limits struct {
	// MaxFootnoteNestingDepth is the footnote-reference nesting cap the
	// inline parser checks; a reference past it degrades to literal text
	// instead of erroring. The inline parser's nesting depth stays 0, so
	// only a cap of 0 (which rejects every reference) has an effect.
	MaxFootnoteNestingDepth int
}

// DefaultLimits matches the spec's stated depth cap of 5.
func DefaultLimits() Limits {
	return Limits{MaxFootnoteNestingDepth: 5}
}

// BrokenLinkCallback lets a host synthesise a destination for a reference
// link whose label has no matching definition. Returning ok=false leaves
// the bracket text as literal.
type BrokenLinkCallback func(reference string) (destination, title string, ok bool)

// URLRewriter lets a host rewrite every resolved link/image destination
// before it is stored on the AST node.
type URLRewriter func(url string) string

// ParseOptions bundles every parser-time configuration.
type ParseOptions struct {
	Extensions         Extensions
	Tweaks             ParserTweaks
	Limits             Limits
	BrokenLinkCallback BrokenLinkCallback
	URLRewriter        URLRewriter
}

// Default returns bare-CommonMark parse options (no extensions, default
// limits, no callbacks).
func Default() ParseOptions {
	return ParseOptions{
		Limits: DefaultLimits(),
	}
}

// DefaultGFM returns parse options with the GFM() extension bundle enabled.
func DefaultGFM() ParseOptions {
	return ParseOptions{
		Extensions: GFM(),
		Limits:     DefaultLimits(),
	}
}

// FrontMatterDelimiter resolves the configured delimiter or the default.
func (o ParseOptions) FrontMatterDelimiter() string {
	if o.Tweaks.FrontMatterDelimiter != "" {
		return o.Tweaks.FrontMatterDelimiter
	}
	return DefaultFrontMatterDelimiter
}
