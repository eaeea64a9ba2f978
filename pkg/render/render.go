// Package render compiles a parsed span tree plus an optional caret
// position into a flat sequence of attribute runs covering the whole
// document text. The output is the contract the attribute-application
// bridge relies on: sorted by start, gapless, non-overlapping, an exact
// partition of [0, len(text)).
//
// Compilation is a pure function: no shared state, no errors, re-run in
// full on every keystroke and caret move.
package render

import (
	"sort"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/attr"
	"github.com/yaklabco/gomdedit/pkg/mdast"
)

// Caret is an optional caret byte position. Negative means no caret.
type Caret int

// NoCaret compiles with every syntax marker hidden.
const NoCaret Caret = -1

// CaretAt returns a Caret at the given byte offset.
func CaretAt(pos int) Caret {
	if pos < 0 {
		return NoCaret
	}
	return Caret(pos)
}

// inSpan reports whether the caret is inside [start, end], inclusive of
// both endpoints. Boundary inclusivity means typing exactly at a marker
// edge still reveals the marker.
func (c Caret) inSpan(start, end int) bool {
	return c >= 0 && int(c) >= start && int(c) <= end
}

// Run maps one byte range [Start, End) to one attribute set.
type Run struct {
	Start int
	End   int
	Attrs attr.Set
}

// Len returns the byte length of the run.
func (r Run) Len() int {
	return r.End - r.Start
}

// Compute compiles text, its span forest and a caret position into the
// ordered run sequence. Malformed spans (inverted or out-of-range) are
// clamped or skipped; Compute never panics and never returns an error.
func Compute(text string, spans []*mdast.Span, caret Caret, opts Options) []Run {
	c := &compiler{
		text:  text,
		caret: caret,
		opts:  opts,
	}
	for _, span := range spans {
		c.emit(span)
	}
	return fillGaps(len(text), c.runs)
}

type compiler struct {
	text  string
	caret Caret
	opts  Options
	runs  []Run
}

func (c *compiler) push(start, end int, attrs attr.Set) {
	c.runs = append(c.runs, Run{Start: start, End: end, Attrs: attrs})
}

// syntaxAttrs picks the marker style for a node: visible when the caret
// sits inside the node's range, hidden otherwise.
func (c *compiler) syntaxAttrs(span *mdast.Span) attr.Set {
	if c.caret.inSpan(span.Start, span.End) {
		return attr.SyntaxVisible()
	}
	return attr.SyntaxHidden()
}

func (c *compiler) emit(span *mdast.Span) {
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	// Degenerate ranges produce nothing, and their subtrees are not worth
	// visiting: child ranges nest inside the parent's.
	if start >= end || start >= len(c.text) {
		return
	}
	if end > len(c.text) {
		end = len(c.text)
	}

	switch span.Kind {
	case mdast.KindStrong:
		c.emitDelimited(span, start, end, 2, attr.ForStrong())

	case mdast.KindEmph:
		c.emitDelimited(span, start, end, 1, attr.ForEmph())

	case mdast.KindCode:
		c.emitDelimited(span, start, end, 1, attr.ForInlineCode())

	case mdast.KindStrikethrough:
		c.emitDelimited(span, start, end, 2, attr.ForStrikethrough())

	case mdast.KindHeading:
		c.emitHeading(span, start, end)

	case mdast.KindLink:
		c.push(start, end, attr.ForLink())

	case mdast.KindCodeBlock:
		c.emitCodeBlock(span, start, end)

	case mdast.KindBlockQuote:
		c.push(start, end, attr.ForBlockquote())

	case mdast.KindList:
		// Container only; visual structure comes from item rendering.
		c.emitChildren(span)

	case mdast.KindItem:
		c.emitItem(span, start, end)

	case mdast.KindTable:
		// Whole-block monospace fallback; no per-cell modeling.
		c.push(start, end, attr.ForCodeBlock())

	case mdast.KindFootnote:
		// Definitions and references rendered in muted link color.
		c.push(start, end, attr.ForLink())

	default:
		// Text, Paragraph, HTMLInline, Other and anything unrecognized:
		// no run of their own, just recurse.
		c.emitChildren(span)
	}
}

func (c *compiler) emitChildren(span *mdast.Span) {
	for _, child := range span.Children {
		c.emit(child)
	}
}

// emitDelimited handles the symmetric inline constructs: a marker of up to
// markerLen bytes on each side, interior styled with interiorAttrs when
// one remains.
func (c *compiler) emitDelimited(span *mdast.Span, start, end, markerLen int, interiorAttrs attr.Set) {
	syn := c.syntaxAttrs(span)
	m := markerLen
	if end-start < m {
		m = end - start
	}
	c.push(start, start+m, syn)
	if start+m < end-m {
		c.push(start+m, end-m, interiorAttrs)
	}
	c.push(end-m, end, syn)
}

func (c *compiler) emitHeading(span *mdast.Span, start, end int) {
	syn := c.syntaxAttrs(span)
	content := attr.ForHeadingWithBase(span.Level, c.opts.effectiveBaseFontSize())

	if c.text[start] == '#' {
		// ATX: the "# " / "## " prefix is a syntax marker.
		prefixLen := span.Level + 1
		if prefixLen > end-start {
			prefixLen = end - start
		}
		c.push(start, start+prefixLen, syn)
		if start+prefixLen < end {
			c.push(start+prefixLen, end, content)
		}
		return
	}

	// Setext: the underline (=== / ---) sits on the last line of the span.
	// Everything before the final newline is heading content.
	if nl := strings.LastIndexByte(c.text[start:end], '\n'); nl >= 0 {
		nlAbs := start + nl
		if start < nlAbs {
			c.push(start, nlAbs, content)
		}
		if nlAbs < end {
			c.push(nlAbs, end, syn)
		}
		return
	}

	// No newline in the span; treat the whole range as content.
	c.push(start, end, content)
}

// emitCodeBlock splits fenced blocks into fence lines and interior so an
// empty block shows nothing when the caret is elsewhere. Indented blocks
// have no markers and are styled whole.
func (c *compiler) emitCodeBlock(span *mdast.Span, start, end int) {
	if span.Indented || !isFenceByte(c.text[start]) {
		c.push(start, end, attr.ForCodeBlock())
		return
	}

	syn := c.syntaxAttrs(span)
	body := c.text[start:end]

	firstNL := strings.IndexByte(body, '\n')
	if firstNL < 0 {
		// Opening fence only, e.g. "```" at EOF.
		c.push(start, end, syn)
		return
	}
	openEnd := start + firstNL + 1

	closeStart := end
	search := body
	if strings.HasSuffix(search, "\n") {
		search = search[:len(search)-1]
	}
	if lastNL := strings.LastIndexByte(search, '\n'); lastNL >= 0 {
		lineStart := start + lastNL + 1
		if lineStart >= openEnd && isFenceLine(c.text[lineStart:end]) {
			closeStart = lineStart
		}
	}

	c.push(start, openEnd, syn)
	if openEnd < closeStart {
		c.push(openEnd, closeStart, attr.ForCodeBlock())
	}
	if closeStart < end {
		c.push(closeStart, end, syn)
	}
}

func (c *compiler) emitItem(span *mdast.Span, start, end int) {
	// The bullet or number marker is implicit in the source and has no
	// child node; its range runs from the item start to the first child,
	// defaulting to two bytes when the item is empty.
	markerEnd := start + 2
	if len(span.Children) > 0 {
		markerEnd = span.Children[0].Start
	}
	if markerEnd > end {
		markerEnd = end
	}
	if start < markerEnd {
		c.push(start, markerEnd, attr.ForListMarker())
	}
	c.emitChildren(span)
}

func isFenceByte(b byte) bool {
	return b == '`' || b == '~'
}

// isFenceLine reports whether a line (possibly ending in '\n') is a
// closing code fence: optional leading spaces then backticks or tildes.
func isFenceLine(line string) bool {
	line = strings.TrimRight(line, "\n")
	line = strings.TrimLeft(line, " ")
	if line == "" {
		return false
	}
	return isFenceByte(line[0])
}

// fillGaps sorts the emitted runs and inserts plain runs into every
// uncovered interval so the result exactly partitions [0, textLen).
// Overlapping emission (possible on pathological trees) is resolved here
// by clipping each run to start where the previous one ended.
func fillGaps(textLen int, runs []Run) []Run {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Start < runs[j].Start
	})

	result := make([]Run, 0, len(runs)*2+1)
	pos := 0
	for _, run := range runs {
		if run.End > textLen {
			run.End = textLen
		}
		if run.Start > pos {
			result = append(result, Run{Start: pos, End: run.Start, Attrs: attr.Plain()})
			pos = run.Start
		}
		if run.Start < pos {
			run.Start = pos
		}
		if run.Start >= run.End {
			continue
		}
		result = append(result, run)
		pos = run.End
	}
	if pos < textLen {
		result = append(result, Run{Start: pos, End: textLen, Attrs: attr.Plain()})
	}
	return result
}
