// Package mdast defines the span tree produced by parsing Markdown source:
// an ordered, nested forest of kinded byte ranges. Spans are immutable
// snapshots rebuilt wholesale on every re-parse; nothing in this package
// mutates a tree after construction.
package mdast

// Kind classifies the semantic type of a span.
type Kind uint16

// Span kinds. The set is closed: parsers map anything unrecognized to
// KindOther rather than inventing new kinds.
const (
	KindText Kind = iota
	KindStrong
	KindEmph
	KindCode
	KindMath
	KindLink
	KindHeading
	KindCodeBlock
	KindTable
	KindFootnote
	KindStrikethrough
	KindImage
	KindList
	KindItem
	KindBlockQuote
	KindParagraph
	KindHTMLInline
	KindOther
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindStrong:
		return "Strong"
	case KindEmph:
		return "Emph"
	case KindCode:
		return "Code"
	case KindMath:
		return "Math"
	case KindLink:
		return "Link"
	case KindHeading:
		return "Heading"
	case KindCodeBlock:
		return "CodeBlock"
	case KindTable:
		return "Table"
	case KindFootnote:
		return "Footnote"
	case KindStrikethrough:
		return "Strikethrough"
	case KindImage:
		return "Image"
	case KindList:
		return "List"
	case KindItem:
		return "Item"
	case KindBlockQuote:
		return "BlockQuote"
	case KindParagraph:
		return "Paragraph"
	case KindHTMLInline:
		return "HTMLInline"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Span is a single node in the parsed Markdown tree.
//
// Start and End are byte offsets into the exact source string the tree was
// parsed from, covering the full construct including its syntax markers
// ("**bold**" spans the asterisks, "# Title" spans the hash prefix).
// Children are ordered by Start and nested within [Start, End).
type Span struct {
	Kind  Kind
	Start int
	End   int

	Children []*Span

	// URL is the destination for KindLink and KindImage.
	URL string

	// Level is the heading level (1-6) for KindHeading.
	Level int

	// Language is the fence info language for KindCodeBlock. Filled by
	// detection when the fence carries no info string.
	Language string

	// Indented is true for indented (non-fenced) code blocks.
	Indented bool
}

// Len returns the byte length of the span's range.
func (s *Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether pos lies within the span's range, inclusive of
// both endpoints. Endpoint inclusivity is what lets a caret sitting exactly
// on a marker edge still count as "inside" the construct.
func (s *Span) Contains(pos int) bool {
	return pos >= s.Start && pos <= s.End
}

// HasChildren returns true if the span has any children.
func (s *Span) HasChildren() bool {
	return len(s.Children) > 0
}
