// Package attr defines the closed vocabulary of presentation facts the
// attribute-run compiler emits. A fact never names a concrete color or
// font: colors are symbolic tokens resolved by the downstream bridge
// against the active scheme, and fonts are described by traits and size.
package attr

// AttrKind identifies the type of a text attribute fact.
type AttrKind uint8

// Attribute kinds. The set is closed; bridges switch exhaustively on it.
const (
	Bold AttrKind = iota
	Italic
	Monospace
	Hidden
	FontSize
	ForegroundColor
	BackgroundColor
	ListMarker
	BlockquoteBar
	Strikethrough
	LineSpacing
	HeadingSeparator
)

// String returns a human-readable name for the attribute kind.
func (k AttrKind) String() string {
	switch k {
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case Monospace:
		return "Monospace"
	case Hidden:
		return "Hidden"
	case FontSize:
		return "FontSize"
	case ForegroundColor:
		return "ForegroundColor"
	case BackgroundColor:
		return "BackgroundColor"
	case ListMarker:
		return "ListMarker"
	case BlockquoteBar:
		return "BlockquoteBar"
	case Strikethrough:
		return "Strikethrough"
	case LineSpacing:
		return "LineSpacing"
	case HeadingSeparator:
		return "HeadingSeparator"
	default:
		return "Unknown"
	}
}

// TextAttribute is a single presentation fact.
//
// Size carries the point size for FontSize and the spacing in tenths of a
// point for LineSpacing (96 = 9.6pt). Token carries the symbolic color
// name for ForegroundColor and BackgroundColor. Both are zero for all
// other kinds, and equality over the full struct is what Contains uses.
type TextAttribute struct {
	Kind  AttrKind
	Size  float64
	Token string
}

// Flag constructs a payload-free attribute fact.
func Flag(kind AttrKind) TextAttribute {
	return TextAttribute{Kind: kind}
}

// Sized constructs a FontSize or LineSpacing fact.
func Sized(kind AttrKind, size float64) TextAttribute {
	return TextAttribute{Kind: kind, Size: size}
}

// Colored constructs a ForegroundColor or BackgroundColor fact.
func Colored(kind AttrKind, token string) TextAttribute {
	return TextAttribute{Kind: kind, Token: token}
}
