package mdast

import "fmt"

// Validate checks the structural invariants the rest of the system relies
// on: sibling ranges ordered and non-overlapping, child ranges nested
// within their parent's range, and no inverted ranges.
//
// The attribute-run compiler is defensive and survives malformed trees by
// skipping the offending nodes, so Validate is not on the hot path; it
// exists for parser tests and hosts that want to fail loudly instead.
func Validate(spans []*Span) error {
	return validateSiblings(spans, 0, -1)
}

func validateSiblings(spans []*Span, parentStart, parentEnd int) error {
	prev := parentStart
	for _, span := range spans {
		if span.Start > span.End {
			return fmt.Errorf("span %s has inverted range [%d, %d)", span.Kind, span.Start, span.End)
		}
		if span.Start < prev {
			return fmt.Errorf("span %s at %d overlaps preceding sibling ending at %d", span.Kind, span.Start, prev)
		}
		if parentEnd >= 0 && span.End > parentEnd {
			return fmt.Errorf("span %s ends at %d, outside parent range ending at %d", span.Kind, span.End, parentEnd)
		}
		if err := validateSiblings(span.Children, span.Start, span.End); err != nil {
			return err
		}
		prev = span.End
	}
	return nil
}
