package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/gomdedit/pkg/mdast"
)

func TestSpan_Contains(t *testing.T) {
	t.Parallel()

	span := &mdast.Span{Kind: mdast.KindStrong, Start: 6, End: 15}

	tests := []struct {
		name string
		pos  int
		want bool
	}{
		{"before", 5, false},
		{"at start", 6, true},
		{"inside", 10, true},
		{"at end", 15, true},
		{"after", 16, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := span.Contains(testCase.pos); got != testCase.want {
				t.Errorf("Contains(%d) = %v, want %v", testCase.pos, got, testCase.want)
			}
		})
	}
}

func TestSpan_Len(t *testing.T) {
	t.Parallel()

	span := &mdast.Span{Start: 3, End: 11}
	if got := span.Len(); got != 8 {
		t.Errorf("Len() = %d, want 8", got)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind mdast.Kind
		want string
	}{
		{mdast.KindText, "Text"},
		{mdast.KindStrong, "Strong"},
		{mdast.KindCodeBlock, "CodeBlock"},
		{mdast.KindBlockQuote, "BlockQuote"},
		{mdast.Kind(999), "Unknown"},
	}

	for _, testCase := range tests {
		if got := testCase.kind.String(); got != testCase.want {
			t.Errorf("Kind(%d).String() = %q, want %q", testCase.kind, got, testCase.want)
		}
	}
}

func testForest() []*mdast.Span {
	return []*mdast.Span{
		{Kind: mdast.KindHeading, Start: 0, End: 8, Level: 2},
		{Kind: mdast.KindParagraph, Start: 10, End: 40, Children: []*mdast.Span{
			{Kind: mdast.KindText, Start: 10, End: 16},
			{Kind: mdast.KindStrong, Start: 16, End: 25, Children: []*mdast.Span{
				{Kind: mdast.KindEmph, Start: 18, End: 23},
			}},
			{Kind: mdast.KindLink, Start: 26, End: 40, URL: "https://example.com"},
		}},
	}
}

func TestWalk_Preorder(t *testing.T) {
	t.Parallel()

	var kinds []mdast.Kind
	err := mdast.Walk(testForest(), func(s *mdast.Span) error {
		kinds = append(kinds, s.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []mdast.Kind{
		mdast.KindHeading,
		mdast.KindParagraph,
		mdast.KindText,
		mdast.KindStrong,
		mdast.KindEmph,
		mdast.KindLink,
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d spans, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("stop here")
	var visited int
	err := mdast.Walk(testForest(), func(s *mdast.Span) error {
		visited++
		if s.Kind == mdast.KindStrong {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("Walk returned %v, want sentinel", err)
	}
	if visited != 4 {
		t.Errorf("visited %d spans before stopping, want 4", visited)
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	found := mdast.FindFirst(testForest(), func(s *mdast.Span) bool {
		return s.Kind == mdast.KindEmph
	})
	if found == nil || found.Start != 18 {
		t.Fatalf("FindFirst = %+v, want Emph at 18", found)
	}

	missing := mdast.FindFirst(testForest(), func(s *mdast.Span) bool {
		return s.Kind == mdast.KindTable
	})
	if missing != nil {
		t.Errorf("FindFirst for absent kind = %+v, want nil", missing)
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	texts := mdast.FindByKind(testForest(), mdast.KindText)
	if len(texts) != 1 {
		t.Fatalf("found %d Text spans, want 1", len(texts))
	}
}
