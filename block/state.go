package block

import (
	"github.com/shodgson/commonmark-go/ast"
)

// container wraps one entry on the parser's open-block stack: the AST node
// itself plus the bookkeeping a continuation check needs that does not
// belong on the node's own Value payload.
type container struct {
	node *ast.Node

	// fenceLen is the opening fence length for a multiline block quote or
	// an alert (alerts behave like a block quote that may additionally be
	// fenced with a run of '>' longer than one).
	fenceLen int

	// lastLineBlank records whether the most recently absorbed line inside
	// this container (but not one of its descendants) was blank; used by
	// the list/list-item looseness rule.
	lastLineBlank bool

	// everBlank is set (and never cleared) the first time a blank line is
	// absorbed while this container is open, used to decide list/
	// description-item looseness once the item closes.
	everBlank bool

	// startedAtLine is used only for sourcepos bookkeeping sanity checks.
	startedAtLine int
}

func (c *container) kind() ast.Kind { return c.node.Kind }

// acceptsLazyContinuation reports whether a line that fails every
// container's own continuation test may still be absorbed into this
// container's open paragraph tip rather than closing it (CommonMark's
// "lazy continuation line" rule). Only paragraphs (and list items/quotes
// whose tip is a paragraph) accept this; the check is performed by the
// caller against the deepest container holding an open paragraph.
func acceptsLazyContinuation(k ast.Kind) bool {
	switch k {
	case ast.KindBlockQuote, ast.KindMultilineBlockQuote, ast.KindAlert, ast.KindListItem,
		ast.KindDescriptionDetails:
		return true
	default:
		return false
	}
}
