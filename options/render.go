package options

// ListStyle selects the bullet character the CommonMark emitter uses for
// bullet lists that did not record their own BulletChar (freshly
// constructed nodes rather than ones parsed from source).
type ListStyle byte

const (
	ListStyleDash      ListStyle = '-'
	ListStylePlus      ListStyle = '+'
	ListStyleAsterisk  ListStyle = '*'
)

// SyntaxHighlighter is the pluggable adapter a host may supply to render a
// fenced code block's contents with language-aware highlighting. The HTML
// emitter passes the block's first info-string word and its raw,
// unescaped body; Highlight returns pre-rendered HTML, which the emitter
// writes verbatim, or ok=false to fall back to the default, escaped
// `<code>` rendering.
type SyntaxHighlighter interface {
	Highlight(language, body string) (html string, ok bool)
}

// NodeRenderFunc is the per-node formatter override hook: called in place
// of (or alongside) the default renderer for nodes of the kind it was
// registered for. Directive controls what happens next.
type NodeRenderFunc func(ctx *RenderContext, entering bool) Directive

// Directive is returned by a NodeRenderFunc to tell the emitter what to do
// after the override has run.
type Directive struct {
	// RenderChildren, when true, makes the emitter also run its default
	// rendering for the node after the override. When false (the zero
	// value), the default rendering for the node is skipped, but its
	// children are still traversed.
	RenderChildren bool
	// SkipChildren, when true, skips both the default rendering and the
	// traversal of the node's children; the override was responsible for
	// anything that needed emitting.
	SkipChildren bool
}

// RenderContext is passed to a NodeRenderFunc; it exposes the write sink
// and the host's UserData. Falling back to the default renderer is done
// through the returned Directive.
type RenderContext struct {
	// Write appends raw output (already escaped by the caller if needed).
	Write func(s string)
	// UserData is whatever the host attached via RenderOptions.UserData.
	UserData interface{}
}

// RenderOptions bundles every renderer-time configuration shared across
// the HTML, CommonMark and XML emitters (not every field applies to every
// emitter; see each package's doc comment for which it reads).
type RenderOptions struct {
	Hardbreaks           bool
	GitHubPreLang        bool
	FullInfoString       bool
	Unsafe               bool
	Escape               bool
	EscapedCharSpans     bool
	Width                int
	Sourcepos            bool
	TaskListClasses      bool
	ListStyle            ListStyle
	FigureImage          bool
	MinimiseCommonMark   bool
	SmartPunctuation     bool
	HeaderIDs            bool
	HeaderIDPrefix       string

	// Tagfilter mirrors Extensions.Tagfilter from the parse-options bundle
	// that produced the document being rendered (markdown.MarkdownToHTML
	// copies it across; callers of markdown.FormatHTML set it themselves); it is a render-time
	// behaviour even though it is toggled as a parser extension. When set,
	// GFM's fixed denylist of block-forming tag names has its leading '<'
	// escaped even in Unsafe mode.
	Tagfilter bool

	SyntaxHighlighter SyntaxHighlighter
	UserData          interface{}

	// NodeOverrides maps a node-kind name (ast.Kind.String()) to a
	// per-variant override, matching the "custom formatter hook" in the
	// spec's emitter design.
	NodeOverrides map[string]NodeRenderFunc
}

// DefaultRenderOptions returns HTML-safe, CommonMark-default-bullet
// render options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ListStyle: ListStyleAsterisk,
	}
}
