package mdast

// FindContainingSpan returns the innermost span containing pos whose kind
// represents visible formatting. Structural kinds (Text, Paragraph, List,
// Item, HTMLInline, Other) are skipped; the query answers "what Markdown
// construct is this position inside", so containers don't count.
//
// Containment is inclusive of both range endpoints. Children are checked
// before the node itself so the deepest match wins; siblings are assumed
// non-overlapping per the parser contract, so at most one sibling can
// contain a given position.
//
// Returns nil when no interesting span contains pos.
func FindContainingSpan(spans []*Span, pos int) *Span {
	for _, span := range spans {
		if !span.Contains(pos) {
			continue
		}
		if inner := FindContainingSpan(span.Children, pos); inner != nil {
			return inner
		}
		if span.Kind.Interesting() {
			return span
		}
	}
	return nil
}

// Interesting reports whether the kind represents visible formatting
// rather than a structural container.
func (k Kind) Interesting() bool {
	switch k {
	case KindText, KindParagraph, KindList, KindItem, KindHTMLInline, KindOther:
		return false
	default:
		return true
	}
}
