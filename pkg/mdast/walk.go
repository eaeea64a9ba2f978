package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(s *Span) error

// Walk performs a pre-order traversal of the span forest.
// If walkFunc returns a non-nil error the walk stops immediately and
// returns that error.
func Walk(spans []*Span, walkFunc WalkFunc) error {
	for _, span := range spans {
		if err := walkSpan(span, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

func walkSpan(span *Span, walkFunc WalkFunc) error {
	if span == nil {
		return nil
	}

	if err := walkFunc(span); err != nil {
		return err
	}

	for _, child := range span.Children {
		if err := walkSpan(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all spans matching the predicate, in document order.
func FindAll(spans []*Span, predicate func(s *Span) bool) []*Span {
	var result []*Span

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(spans, func(span *Span) error {
		if predicate(span) {
			result = append(result, span)
		}
		return nil
	})

	return result
}

// FindFirst returns the first span matching the predicate, or nil.
func FindFirst(spans []*Span, predicate func(s *Span) bool) *Span {
	var found *Span

	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	Walk(spans, func(span *Span) error {
		if predicate(span) {
			found = span
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all spans of the specified kind.
func FindByKind(spans []*Span, kind Kind) []*Span {
	return FindAll(spans, func(s *Span) bool {
		return s.Kind == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
