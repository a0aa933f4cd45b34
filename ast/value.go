package ast

// Alignment is a table column's alignment, taken from its delimiter row.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ListKind distinguishes bullet and ordered lists.
type ListKind int

const (
	ListKindBullet ListKind = iota
	ListKindOrdered
)

// ListData is the Value payload of a KindList node.
type ListData struct {
	Kind          ListKind
	Start         int
	Delimiter     byte // '.' or ')' for ordered lists
	BulletChar    byte // '-', '+', or '*' for bullet lists
	Tight         bool
	MarkerOffset  int
	Padding       int
}

// ListItemData is the Value payload of a KindListItem node.
type ListItemData struct {
	MarkerOffset int
	Padding      int
	// Task is non-nil when the item began with a GFM task-list marker.
	Task *TaskData
}

// TaskData records a task-list item's checkbox state.
type TaskData struct {
	Checked    bool
	MarkerChar byte // the character between the brackets, usually 'x', 'X' or ' '
}

// HeadingData is the Value payload of a KindHeading node.
type HeadingData struct {
	Level  int
	Setext bool
	// Closed is true for ATX headings that had a trailing run of '#'.
	Closed bool
	// ID is filled in by the HTML renderer's header-ids option; it is not
	// set by the parser.
	ID string
}

// CodeBlockData is the Value payload of a KindCodeBlock node.
type CodeBlockData struct {
	Fenced      bool
	FenceChar   byte
	FenceLength int
	FenceOffset int
	Info        string
	Closed      bool
}

// HTMLBlockData is the Value payload of a KindHTMLBlock node.
type HTMLBlockData struct {
	// BlockType is 1..7, per the HTML-block start conditions.
	BlockType int
}

// LinkData is the Value payload of KindLink and KindImage nodes.
type LinkData struct {
	Destination string
	Title       string
	// ReferenceLabel is set when the link was written in reference form;
	// useful for round-tripping as CommonMark.
	ReferenceLabel string
}

// WikiLinkData is the Value payload of a KindWikiLink node.
type WikiLinkData struct {
	Target string
}

// TableData is the Value payload of a KindTable node.
type TableData struct {
	Alignments []Alignment
}

// TableCellData is the Value payload of a KindTableCell node.
type TableCellData struct {
	Header    bool
	Alignment Alignment
	Column    int
}

// AlertKind enumerates the five GitHub alert kinds.
type AlertKind int

const (
	AlertNote AlertKind = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

func (k AlertKind) String() string {
	switch k {
	case AlertNote:
		return "Note"
	case AlertTip:
		return "Tip"
	case AlertImportant:
		return "Important"
	case AlertWarning:
		return "Warning"
	case AlertCaution:
		return "Caution"
	default:
		return "Note"
	}
}

// AlertData is the Value payload of a KindAlert node.
type AlertData struct {
	Kind           AlertKind
	Title          string // non-empty only when a custom title was given
	FenceLength    int    // length of the ">" run introducing the alert, for multiline alerts
	IsCustomTitled bool
}

// FootnoteDefinitionData is the Value payload of a KindFootnoteDefinition node.
type FootnoteDefinitionData struct {
	Name string
	// Number is assigned during the post-processing hoist pass, in
	// first-reference order.
	Number int
}

// FootnoteReferenceData is the Value payload of a KindFootnoteReference node.
type FootnoteReferenceData struct {
	Name         string
	Number       int
	BackrefIndex int // this reference's ordinal among references to the same name
}

// MathData is the Value payload of KindMathInline/KindMathDisplay nodes.
type MathData struct {
	Literal string
}

// ShortcodeData is the Value payload of a KindShortcode node.
type ShortcodeData struct {
	Name string
	// Emoji is the resolved Unicode rune sequence, or "" if unresolved.
	Emoji string
}

// DescriptionItemData is the Value payload of a KindDescriptionItem node.
type DescriptionItemData struct {
	Tight bool
}

// EscapedData is the Value payload of a KindEscaped node, when the
// render_options.escaped_char_spans option requires wrapping the escaped
// character in a span-equivalent for round-trip fidelity.
type EscapedData struct {
	Char byte
}
