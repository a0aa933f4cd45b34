package ast

// Arena owns every node allocated during one parse call. Node references
// are only ever valid for the lifetime of the Arena that created them; once
// Release is called the arena's bookkeeping slice is cleared (the nodes
// themselves are reclaimed by the garbage collector once nothing else
// references them, matching the "dropped as a unit" lifecycle in the data
// model while fitting Go's memory model rather than requiring a manual
// free).
//
// Go's garbage collector makes an index-based arena (as a non-GC systems
// language would need, to avoid dangling-pointer lifetimes) unnecessary for
// correctness; we still keep an explicit Arena type because the spec's
// lifecycle section describes call-scoped ownership, and a concrete owner
// object gives Release a place to live and gives tests something to assert
// node counts against.
type Arena struct {
	nodes []*Node
}

// NewArena constructs an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode allocates and registers a node of the given kind.
func (a *Arena) NewNode(kind Kind) *Node {
	n := &Node{Kind: kind}
	a.nodes = append(a.nodes, n)
	return n
}

// Len reports how many nodes this arena has allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Release drops the arena's bookkeeping. Nodes created by it must not be
// used afterwards.
func (a *Arena) Release() {
	a.nodes = nil
}

// Document is the Value payload of the root KindDocument node: the
// reference-link map and footnote-definition map that the inline parser
// consults, plus any extension-populated side tables.
type Document struct {
	References *ReferenceMap
	Footnotes  *FootnoteMap
	// FrontMatter holds raw front-matter text (without delimiters), set by
	// the frontmatter extension when front matter is present.
	FrontMatter string
}

// NewDocument allocates a document root node with freshly initialised maps.
func (a *Arena) NewDocument() *Node {
	doc := a.NewNode(KindDocument)
	doc.Value = &Document{
		References: NewReferenceMap(),
		Footnotes:  NewFootnoteMap(),
	}
	return doc
}

// DocumentOf walks up from n to find the owning document's Value. Returns
// nil if n is not rooted in a document (should not happen for nodes
// produced by the block parser).
func DocumentOf(n *Node) *Document {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == KindDocument {
			if d, ok := cur.Value.(*Document); ok {
				return d
			}
			return nil
		}
	}
	return nil
}
