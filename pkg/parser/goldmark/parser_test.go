package goldmark_test

import (
	"context"
	"testing"

	"github.com/yaklabco/gomdedit/pkg/mdast"
	"github.com/yaklabco/gomdedit/pkg/parser/goldmark"
)

func parse(t *testing.T, flavor, source string) []*mdast.Span {
	t.Helper()

	spans, err := goldmark.New(flavor).Parse(context.Background(), source)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", source, err)
	}
	if err := mdast.Validate(spans); err != nil {
		t.Fatalf("Parse(%q) produced invalid tree: %v", source, err)
	}
	return spans
}

func firstOfKind(t *testing.T, spans []*mdast.Span, kind mdast.Kind) *mdast.Span {
	t.Helper()

	found := mdast.FindByKind(spans, kind)
	if len(found) == 0 {
		t.Fatalf("no %s span in tree", kind)
	}
	return found[0]
}

func TestNew_FlavorFallback(t *testing.T) {
	t.Parallel()

	if got := goldmark.New("gfm").Flavor(); got != goldmark.FlavorGFM {
		t.Errorf("Flavor() = %q, want gfm", got)
	}
	if got := goldmark.New("nonsense").Flavor(); got != goldmark.FlavorCommonMark {
		t.Errorf("unknown flavor resolved to %q, want commonmark", got)
	}
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := goldmark.New(goldmark.FlavorCommonMark).Parse(ctx, "# hi")
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "")
	if len(spans) != 0 {
		t.Errorf("empty source produced %d spans", len(spans))
	}
}

func TestParse_StrongRange(t *testing.T) {
	t.Parallel()

	// The strong span must cover the asterisks, not just the word.
	spans := parse(t, goldmark.FlavorCommonMark, "hello **world** end")

	strong := firstOfKind(t, spans, mdast.KindStrong)
	if strong.Start != 6 || strong.End != 15 {
		t.Errorf("strong at [%d,%d), want [6,15)", strong.Start, strong.End)
	}
	if len(strong.Children) == 0 {
		t.Fatal("strong span should carry its text child")
	}
	inner := strong.Children[0]
	if inner.Start != 8 || inner.End != 13 {
		t.Errorf("strong text at [%d,%d), want [8,13)", inner.Start, inner.End)
	}
}

func TestParse_EmphUnderscore(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "an _em_ word")

	emph := firstOfKind(t, spans, mdast.KindEmph)
	if emph.Start != 3 || emph.End != 7 {
		t.Errorf("emph at [%d,%d), want [3,7)", emph.Start, emph.End)
	}
}

func TestParse_ATXHeading(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "## Hello\n\nbody\n")

	h := firstOfKind(t, spans, mdast.KindHeading)
	if h.Level != 2 {
		t.Errorf("level = %d, want 2", h.Level)
	}
	if h.Start != 0 || h.End != 8 {
		t.Errorf("heading at [%d,%d), want [0,8)", h.Start, h.End)
	}
}

func TestParse_SetextHeading(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "kursiv\n-\n")

	h := firstOfKind(t, spans, mdast.KindHeading)
	if h.Level != 2 {
		t.Errorf("level = %d, want 2", h.Level)
	}
	if h.Start != 0 || h.End != 8 {
		t.Errorf("heading at [%d,%d), want [0,8) covering the underline", h.Start, h.End)
	}
}

func TestParse_InlineCode(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "a `code` b")

	code := firstOfKind(t, spans, mdast.KindCode)
	if code.Start != 2 || code.End != 8 {
		t.Errorf("code at [%d,%d), want [2,8)", code.Start, code.End)
	}
}

func TestParse_FencedCodeBlock(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "```go\nfoo\n```\n")

	cb := firstOfKind(t, spans, mdast.KindCodeBlock)
	if cb.Start != 0 || cb.End != 13 {
		t.Errorf("code block at [%d,%d), want [0,13)", cb.Start, cb.End)
	}
	if cb.Language != "go" {
		t.Errorf("language = %q, want go", cb.Language)
	}
	if cb.Indented {
		t.Error("fenced block flagged as indented")
	}
}

func TestParse_EmptyFencedCodeBlock(t *testing.T) {
	t.Parallel()

	// Goldmark records no position at all for this block; the range comes
	// from scanning the raw source.
	spans := parse(t, goldmark.FlavorCommonMark, "```\n```\n")

	cb := firstOfKind(t, spans, mdast.KindCodeBlock)
	if cb.Start != 0 || cb.End != 7 {
		t.Errorf("empty code block at [%d,%d), want [0,7)", cb.Start, cb.End)
	}
	if cb.Language != "" {
		t.Errorf("empty block language = %q, want empty", cb.Language)
	}
}

func TestParse_IndentedCodeBlock(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "    indented code\n\npara\n")

	cb := firstOfKind(t, spans, mdast.KindCodeBlock)
	if !cb.Indented {
		t.Error("indented block not flagged")
	}
	if cb.Start != 0 {
		t.Errorf("indented block starts at %d, want 0", cb.Start)
	}
}

func TestParse_List(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "- Item one\n- Item two\n")

	list := firstOfKind(t, spans, mdast.KindList)
	items := mdast.FindByKind(list.Children, mdast.KindItem)
	if len(items) != 2 {
		t.Fatalf("found %d items, want 2", len(items))
	}

	// The item range reaches back over the "- " marker; the first child
	// starts after it.
	if items[0].Start != 0 {
		t.Errorf("first item starts at %d, want 0", items[0].Start)
	}
	if len(items[0].Children) == 0 || items[0].Children[0].Start != 2 {
		t.Error("first item content should start at byte 2, after the marker")
	}
	if items[1].Start != 11 {
		t.Errorf("second item starts at %d, want 11", items[1].Start)
	}
}

func TestParse_Blockquote(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "> quoted\n")

	bq := firstOfKind(t, spans, mdast.KindBlockQuote)
	if bq.Start != 0 {
		t.Errorf("blockquote starts at %d, want 0 covering the marker", bq.Start)
	}
	if bq.End != 8 {
		t.Errorf("blockquote ends at %d, want 8", bq.End)
	}
}

func TestParse_Link(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "see [hi](https://x.io) now")

	link := firstOfKind(t, spans, mdast.KindLink)
	if link.Start != 4 || link.End != 22 {
		t.Errorf("link at [%d,%d), want [4,22) covering label and destination", link.Start, link.End)
	}
	if link.URL != "https://x.io" {
		t.Errorf("URL = %q", link.URL)
	}
}

func TestParse_Image(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorCommonMark, "![alt](img.png)")

	img := firstOfKind(t, spans, mdast.KindImage)
	if img.Start != 0 || img.End != 15 {
		t.Errorf("image at [%d,%d), want [0,15)", img.Start, img.End)
	}
	if img.URL != "img.png" {
		t.Errorf("URL = %q", img.URL)
	}
}

func TestParse_StrikethroughGFM(t *testing.T) {
	t.Parallel()

	source := "a ~~gone~~ b"

	spans := parse(t, goldmark.FlavorGFM, source)
	st := firstOfKind(t, spans, mdast.KindStrikethrough)
	if st.Start != 2 || st.End != 10 {
		t.Errorf("strikethrough at [%d,%d), want [2,10)", st.Start, st.End)
	}

	// CommonMark has no strikethrough; the tildes stay literal text.
	plain := parse(t, goldmark.FlavorCommonMark, source)
	if got := mdast.FindByKind(plain, mdast.KindStrikethrough); len(got) != 0 {
		t.Errorf("commonmark produced %d strikethrough spans, want 0", len(got))
	}
}

func TestParse_TaskListGFM(t *testing.T) {
	t.Parallel()

	spans := parse(t, goldmark.FlavorGFM, "- [x] done\n- [ ] open\n")

	list := firstOfKind(t, spans, mdast.KindList)
	items := mdast.FindByKind(list.Children, mdast.KindItem)
	if len(items) != 2 {
		t.Fatalf("found %d items, want 2", len(items))
	}
	if items[0].Start != 0 {
		t.Errorf("first item starts at %d, want 0", items[0].Start)
	}

	// The checkbox has no node of its own; the item text starts after it.
	texts := mdast.FindByKind(items[0].Children, mdast.KindText)
	if len(texts) == 0 {
		t.Fatal("task item lost its text content")
	}
	if texts[0].Start != 6 {
		t.Errorf("task item text starts at %d, want 6 (after the checkbox)", texts[0].Start)
	}
}

func TestParse_TableGFM(t *testing.T) {
	t.Parallel()

	source := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	spans := parse(t, goldmark.FlavorGFM, source)
	table := firstOfKind(t, spans, mdast.KindTable)
	if table.Start != 0 {
		t.Errorf("table starts at %d, want 0", table.Start)
	}
	if table.End <= 20 {
		t.Errorf("table ends at %d, should reach into the body row", table.End)
	}
}

func TestParse_MixedDocumentIsValid(t *testing.T) {
	t.Parallel()

	source := `# Title

Some **bold** and *em* and ` + "`code`" + ` here.

> a quote

- one
- two

` + "```go\nfmt.Println()\n```" + `

| h | h |
|---|---|
| c | c |

Done ~~old~~ text.
`

	spans := parse(t, goldmark.FlavorGFM, source)
	if len(spans) == 0 {
		t.Fatal("mixed document produced no spans")
	}

	for _, kind := range []mdast.Kind{
		mdast.KindHeading, mdast.KindStrong, mdast.KindEmph, mdast.KindCode,
		mdast.KindBlockQuote, mdast.KindList, mdast.KindCodeBlock,
		mdast.KindTable, mdast.KindStrikethrough,
	} {
		if len(mdast.FindByKind(spans, kind)) == 0 {
			t.Errorf("no %s span in mixed document", kind)
		}
	}
}
