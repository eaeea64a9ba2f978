package render

import "github.com/yaklabco/gomdedit/pkg/attr"

// DefaultLineSpacing is the extra line spacing, in points, applied by
// bridges when the host does not configure one.
const DefaultLineSpacing = 9.6

// Options carries the compilation defaults a host can vary per
// document. The zero value is usable.
type Options struct {
	// BaseFontSize is the body text size in points. Heading levels deeper
	// than 3 fall back to it. 0 means attr.DefaultFontSize.
	BaseFontSize float64

	// LineSpacing is the extra line spacing in points, carried through to
	// bridges that honor it. 0 means DefaultLineSpacing.
	LineSpacing float64
}

// effectiveBaseFontSize returns BaseFontSize, defaulting if unset.
func (o Options) effectiveBaseFontSize() float64 {
	if o.BaseFontSize <= 0 {
		return attr.DefaultFontSize
	}
	return o.BaseFontSize
}

// EffectiveLineSpacing returns LineSpacing, defaulting if unset.
func (o Options) EffectiveLineSpacing() float64 {
	if o.LineSpacing <= 0 {
		return DefaultLineSpacing
	}
	return o.LineSpacing
}
