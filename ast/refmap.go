package ast

// Reference is a link-reference-definition's resolved destination and title.
type Reference struct {
	Destination string
	Title       string
}

// ReferenceMap holds a document's `[label]: url "title"` definitions, keyed
// by normalised label. First definition wins; later duplicates are ignored
// (the rule is enforced by Insert, which is a no-op if the key already
// exists).
type ReferenceMap struct {
	byLabel map[string]Reference
}

// NewReferenceMap constructs an empty map.
func NewReferenceMap() *ReferenceMap {
	return &ReferenceMap{byLabel: make(map[string]Reference)}
}

// Insert records a definition under its already-normalised label. Returns
// false if a definition under that label already existed (and was kept).
func (m *ReferenceMap) Insert(normalisedLabel string, ref Reference) bool {
	if _, exists := m.byLabel[normalisedLabel]; exists {
		return false
	}
	m.byLabel[normalisedLabel] = ref
	return true
}

// Lookup resolves an already-normalised label.
func (m *ReferenceMap) Lookup(normalisedLabel string) (Reference, bool) {
	ref, ok := m.byLabel[normalisedLabel]
	return ref, ok
}

// Len reports the number of distinct labels recorded.
func (m *ReferenceMap) Len() int {
	return len(m.byLabel)
}

// FootnoteMap holds a document's footnote definitions, keyed by normalised
// name. Unlike ReferenceMap, footnote definitions are Node pointers: the
// definition's content needs to survive into the tree (hoisted to the end
// of the document), not just a destination string.
type FootnoteMap struct {
	byName map[string]*Node
	// order records insertion order, used only for deterministic iteration
	// when pruning unused definitions.
	order []string
}

// NewFootnoteMap constructs an empty map.
func NewFootnoteMap() *FootnoteMap {
	return &FootnoteMap{byName: make(map[string]*Node)}
}

// Insert records a footnote definition node under its normalised name.
// First-wins, matching ReferenceMap.
func (m *FootnoteMap) Insert(normalisedName string, def *Node) bool {
	if _, exists := m.byName[normalisedName]; exists {
		return false
	}
	m.byName[normalisedName] = def
	m.order = append(m.order, normalisedName)
	return true
}

// Lookup resolves an already-normalised footnote name.
func (m *FootnoteMap) Lookup(normalisedName string) (*Node, bool) {
	def, ok := m.byName[normalisedName]
	return def, ok
}

// Names returns the definition names in insertion order.
func (m *FootnoteMap) Names() []string {
	return append([]string(nil), m.order...)
}
