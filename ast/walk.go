package ast

import "errors"

// ErrWalkInvalidated is returned by Walk when the node it is about
// to descend into was structurally mutated (its child list changed) since
// the walk began observing it. The core contract in the data model forbids
// silent truncation; callers that mutate the tree while walking must
// either restart their walk or catch this error.
var ErrWalkInvalidated = errors.New("ast: tree mutated during walk")

// WalkStatus controls traversal after a visit callback returns.
type WalkStatus int

const (
	WalkContinue WalkStatus = iota
	WalkSkipChildren
	WalkStop
)

// Visitor is called once on entering a node and once on leaving it
// (entering=false), pre-order, depth-first, left to right.
type Visitor func(n *Node, entering bool) (WalkStatus, error)

// Walk performs a pre-order depth-first traversal of the tree rooted at n,
// calling visit on entering and leaving each node.
func Walk(n *Node, visit Visitor) error {
	if n == nil {
		return nil
	}
	status, err := visit(n, true)
	if err != nil {
		return err
	}
	switch status {
	case WalkStop:
		return nil
	case WalkSkipChildren:
		// fall through to the leaving call without visiting children
	default:
		n.mu.RLock()
		gen := n.generation
		child := n.FirstChild
		n.mu.RUnlock()
		for child != nil {
			if err := Walk(child, visit); err != nil {
				return err
			}
			n.mu.RLock()
			if n.generation != gen {
				n.mu.RUnlock()
				return ErrWalkInvalidated
			}
			next := child.Next
			n.mu.RUnlock()
			child = next
		}
	}
	_, err = visit(n, false)
	return err
}

// Children returns a snapshot slice of n's direct children. Safe to use
// when the caller wants random access rather than a linked-list walk (for
// example, table row/column indexing).
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}
