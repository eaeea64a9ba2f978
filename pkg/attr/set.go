package attr

// DefaultFontSize is the body text size assumed when a set carries no
// FontSize fact.
const DefaultFontSize = 16.0

// Set is an unordered collection of presentation facts. Duplicates are
// harmless. The zero value is the empty (plain) set.
//
// Sets are small (at most a handful of facts) and ephemeral, so membership
// is a linear scan and copies are cheap.
type Set struct {
	attrs []TextAttribute
}

// NewSet creates a set from the given facts.
func NewSet(attrs ...TextAttribute) Set {
	return Set{attrs: attrs}
}

// Contains reports whether the set holds the exact fact, payload included.
func (s Set) Contains(a TextAttribute) bool {
	for _, have := range s.attrs {
		if have == a {
			return true
		}
	}
	return false
}

// Has reports whether the set holds any fact of the given kind,
// regardless of payload.
func (s Set) Has(kind AttrKind) bool {
	for _, have := range s.attrs {
		if have.Kind == kind {
			return true
		}
	}
	return false
}

// FontSize returns the point size of the first FontSize fact, or
// DefaultFontSize when the set carries none.
func (s Set) FontSize() float64 {
	for _, have := range s.attrs {
		if have.Kind == FontSize {
			return have.Size
		}
	}
	return DefaultFontSize
}

// Foreground returns the symbolic color token of the first
// ForegroundColor fact, or "" when the set carries none.
func (s Set) Foreground() string {
	for _, have := range s.attrs {
		if have.Kind == ForegroundColor {
			return have.Token
		}
	}
	return ""
}

// Background returns the symbolic color token of the first
// BackgroundColor fact, or "" when the set carries none.
func (s Set) Background() string {
	for _, have := range s.attrs {
		if have.Kind == BackgroundColor {
			return have.Token
		}
	}
	return ""
}

// Attrs returns a read-only view of the facts. Callers must not mutate
// the returned slice.
func (s Set) Attrs() []TextAttribute {
	return s.attrs
}

// IsPlain reports whether the set carries no facts at all.
func (s Set) IsPlain() bool {
	return len(s.attrs) == 0
}

// --- Role constructors ---

// ForStrong styles the interior of a strong-emphasis span.
func ForStrong() Set {
	return NewSet(Flag(Bold))
}

// ForEmph styles the interior of an emphasis span.
func ForEmph() Set {
	return NewSet(Flag(Italic))
}

// ForStrongEmph styles nested strong+emphasis interiors.
func ForStrongEmph() Set {
	return NewSet(Flag(Bold), Flag(Italic))
}

// ForHeading styles heading content for the given level (1-6).
// H1-H3 get enlarged sizes; deeper levels keep the body size. Only H1 and
// H2 carry the HeadingSeparator fact that lets the bridge draw a rule
// above the paragraph.
func ForHeading(level int) Set {
	return ForHeadingWithBase(level, DefaultFontSize)
}

// ForHeadingWithBase is ForHeading with a configurable body size for the
// levels that don't get an enlarged one.
func ForHeadingWithBase(level int, base float64) Set {
	var size float64
	switch level {
	case 1:
		size = 32
	case 2:
		size = 26
	case 3:
		size = 21
	default:
		size = base
	}

	attrs := []TextAttribute{
		Flag(Bold),
		Sized(FontSize, size),
		Colored(ForegroundColor, "heading"),
	}
	if level <= 2 {
		attrs = append(attrs, Flag(HeadingSeparator))
	}
	return Set{attrs: attrs}
}

// ForInlineCode styles the interior of an inline code span.
func ForInlineCode() Set {
	return NewSet(
		Flag(Monospace),
		Colored(BackgroundColor, "code_bg"),
		Colored(ForegroundColor, "code_fg"),
	)
}

// ForCodeBlock styles code block content.
func ForCodeBlock() Set {
	return NewSet(
		Flag(Monospace),
		Colored(BackgroundColor, "code_block_bg"),
		Colored(ForegroundColor, "code_fg"),
	)
}

// ForLink styles link text.
func ForLink() Set {
	return NewSet(Colored(ForegroundColor, "link"))
}

// ForStrikethrough styles struck-through text.
func ForStrikethrough() Set {
	return NewSet(
		Flag(Strikethrough),
		Colored(ForegroundColor, "strikethrough"),
	)
}

// ForBlockquote styles block quote content.
func ForBlockquote() Set {
	return NewSet(
		Flag(BlockquoteBar),
		Colored(ForegroundColor, "blockquote"),
	)
}

// ForListMarker styles list item bullets and numbers.
func ForListMarker() Set {
	return NewSet(
		Flag(ListMarker),
		Colored(ForegroundColor, "list_marker"),
	)
}

// SyntaxHidden styles syntax markers away from the caret.
func SyntaxHidden() Set {
	return NewSet(Flag(Hidden))
}

// SyntaxVisible styles syntax markers revealed near the caret.
func SyntaxVisible() Set {
	return NewSet(Colored(ForegroundColor, "syntax"))
}

// Plain is the unstyled set used for gap filling.
func Plain() Set {
	return Set{}
}
