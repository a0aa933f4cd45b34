// Package ast defines the AST node type produced by the block and inline
// parsers and consumed by the render packages.
//
// All nodes belonging to one parse are allocated from a single Arena
// (see arena.go) and form a doubly-linked tree: Parent, FirstChild,
// LastChild, Prev and Next. A node's Value field carries the payload
// specific to its Kind (list metadata, code block fence info, link
// destination, and so on); most leaf/inline kinds need no payload and
// leave Value nil.
package ast

import "sync"

// Kind tags the variant of a Node, mirroring the node variants enumerated
// in the data model: containers, leaves, and inlines.
type Kind int

const (
	KindInvalid Kind = iota

	// Containers
	KindDocument
	KindBlockQuote
	KindMultilineBlockQuote
	KindList
	KindListItem
	KindDescriptionList
	KindDescriptionItem
	KindDescriptionTerm
	KindDescriptionDetails
	KindFootnoteDefinition
	KindTable
	KindTableRow
	KindTableCell
	KindAlert

	// Leaves
	KindHeading
	KindThematicBreak
	KindCodeBlock
	KindHTMLBlock
	KindParagraph
	KindLinkReferenceDefinition

	// Inlines
	KindText
	KindSoftBreak
	KindHardBreak
	KindCodeSpan
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindUnderline
	KindSuperscript
	KindSubscript
	KindHighlight
	KindSpoiler
	KindLink
	KindImage
	KindWikiLink
	KindFootnoteReference
	KindMathInline
	KindMathDisplay
	KindRawHTML
	KindEscaped
	KindShortcode
)

// String names match the canonical variant names the XML emitter uses.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	KindDocument:                "document",
	KindBlockQuote:              "block_quote",
	KindMultilineBlockQuote:     "multiline_block_quote",
	KindList:                    "list",
	KindListItem:                "item",
	KindDescriptionList:         "description_list",
	KindDescriptionItem:         "description_item",
	KindDescriptionTerm:         "description_term",
	KindDescriptionDetails:      "description_details",
	KindFootnoteDefinition:      "footnote_definition",
	KindTable:                   "table",
	KindTableRow:                "table_row",
	KindTableCell:               "table_cell",
	KindAlert:                   "block_quote", // alerts render as a specialised block quote
	KindHeading:                 "heading",
	KindThematicBreak:           "thematic_break",
	KindCodeBlock:               "code_block",
	KindHTMLBlock:               "html_block",
	KindParagraph:               "paragraph",
	KindLinkReferenceDefinition: "link_reference_definition",
	KindText:                    "text",
	KindSoftBreak:               "softbreak",
	KindHardBreak:               "linebreak",
	KindCodeSpan:                "code",
	KindEmphasis:                "emph",
	KindStrong:                  "strong",
	KindStrikethrough:           "strikethrough",
	KindUnderline:               "underline",
	KindSuperscript:             "superscript",
	KindSubscript:               "subscript",
	KindHighlight:               "highlight",
	KindSpoiler:                 "spoiler",
	KindLink:                    "link",
	KindImage:                   "image",
	KindWikiLink:                "wikilink",
	KindFootnoteReference:       "footnote_reference",
	KindMathInline:              "math_inline",
	KindMathDisplay:             "math_display",
	KindRawHTML:                 "html_inline",
	KindEscaped:                 "escaped",
	KindShortcode:               "shortcode",
}

// IsContainer reports whether nodes of this kind may have children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindDocument, KindBlockQuote, KindMultilineBlockQuote, KindList, KindListItem,
		KindDescriptionList, KindDescriptionItem, KindDescriptionTerm, KindDescriptionDetails,
		KindFootnoteDefinition, KindTable, KindTableRow, KindTableCell, KindAlert,
		KindHeading, KindParagraph,
		KindEmphasis, KindStrong, KindStrikethrough, KindUnderline, KindSuperscript,
		KindSubscript, KindHighlight, KindSpoiler, KindLink, KindImage, KindWikiLink,
		KindEscaped:
		return true
	default:
		return false
	}
}

// Pos is a 1-based line/column source position. A tab advances Column to
// the next multiple of 4, per spec.
type Pos struct {
	Line   int
	Column int
}

// LessEq reports whether p precedes or equals q.
func (p Pos) LessEq(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column <= q.Column
}

// Node is one element of the AST. It is never constructed directly;
// use Arena.NewNode.
//
// Interior mutation is guarded by mu: walkers take RLock while visiting
// a node's children, the mutation methods on Node (AppendChild,
// InsertBefore, Unlink and the like) take Lock. A walker that observes its
// current node's child list change out from under it aborts
// deterministically rather than silently truncating (see Walk in walk.go).
type Node struct {
	Kind Kind

	Parent, FirstChild, LastChild, Prev, Next *Node

	Start, End Pos

	// Literal carries raw text content for text-like leaves and
	// inlines (Text, CodeSpan, CodeBlock before its Value is filled,
	// RawHTML, MathInline/MathDisplay).
	Literal string

	// Value is the kind-specific payload; see value.go for the
	// concrete types. Nil for kinds that need no extra data.
	Value interface{}

	mu sync.RWMutex

	generation uint64
}

// AppendChild appends child as the last child of n, taking n's write lock.
// Any Walker currently iterating n's children will detect the generation
// bump and abort on its next step.
func (n *Node) AppendChild(child *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	child.Parent = n
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
	} else {
		child.Prev = n.LastChild
		n.LastChild.Next = child
		n.LastChild = child
	}
	n.generation++
}

// InsertBefore inserts child immediately before sibling, which must
// currently be a child of n (or nil to mean "at the end").
func (n *Node) InsertBefore(child, sibling *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	child.Parent = n
	if sibling == nil {
		if n.LastChild == nil {
			n.FirstChild, n.LastChild = child, child
		} else {
			child.Prev = n.LastChild
			n.LastChild.Next = child
			n.LastChild = child
		}
		n.generation++
		return
	}
	child.Next = sibling
	child.Prev = sibling.Prev
	if sibling.Prev != nil {
		sibling.Prev.Next = child
	} else {
		n.FirstChild = child
	}
	sibling.Prev = child
	n.generation++
}

// Unlink removes n from its parent's child list. n's own Parent/Prev/Next
// are cleared; its own children are untouched.
func (n *Node) Unlink() {
	parent := n.Parent
	if parent == nil {
		return
	}
	parent.mu.Lock()
	defer parent.mu.Unlock()

	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		parent.LastChild = n.Prev
	}
	parent.generation++
	n.Parent, n.Prev, n.Next = nil, nil, nil
}

// ReplaceChildrenWithText discards all of n's children and replaces them
// with a single literal string, used by the inline-parser post pass when a
// leaf's content collapses to unparsed text.
func (n *Node) ReplaceChildrenWithText(literal string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.FirstChild, n.LastChild = nil, nil
	n.Literal = literal
	n.generation++
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	count := 0
	for c := n.FirstChild; c != nil; c = c.Next {
		count++
	}
	return count
}

// IsLeaf reports whether n has no children; its kind is not consulted, so
// an empty container also counts as a leaf.
func (n *Node) IsLeaf() bool {
	return n.FirstChild == nil
}
