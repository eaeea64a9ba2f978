package goldmark

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomdedit/pkg/langdetect"
	"github.com/yaklabco/gomdedit/pkg/mdast"
)

// mapper converts a goldmark AST into a span forest with full-construct
// byte ranges.
type mapper struct {
	content []byte

	// lastEnd is the highest byte offset assigned to any span so far.
	// Used as the scan origin for blocks goldmark stores no position for
	// (an empty fenced code block has neither content lines nor info).
	lastEnd int
}

func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapChildren maps all children of a goldmark node, in document order.
// Children goldmark gives no usable position for are dropped.
func (m *mapper) mapChildren(gmParent ast.Node) []*mdast.Span {
	var spans []*mdast.Span
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		span := m.mapNode(child)
		if span == nil || span.Start >= span.End {
			continue
		}
		spans = append(spans, span)
		if span.End > m.lastEnd {
			m.lastEnd = span.End
		}
	}
	return spans
}

// mapNode converts a single goldmark node. Returns nil when no source
// range can be derived for the node.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Span {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		return m.mapHeading(gmn)

	case *ast.Paragraph:
		return m.mapLinesBlock(gmn, mdast.KindParagraph)

	case *ast.TextBlock:
		return m.mapLinesBlock(gmn, mdast.KindParagraph)

	case *ast.List:
		return m.mapContainer(gmn, mdast.KindList, false)

	case *ast.ListItem:
		return m.mapContainer(gmn, mdast.KindItem, true)

	case *ast.Blockquote:
		return m.mapContainer(gmn, mdast.KindBlockQuote, true)

	case *ast.FencedCodeBlock:
		return m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		return m.mapIndentedCodeBlock(gmn)

	case *ast.HTMLBlock:
		return m.mapLinesBlock(gmn, mdast.KindOther)

	// Inline-level nodes.
	case *ast.Text:
		seg := gmn.Segment
		return &mdast.Span{Kind: mdast.KindText, Start: seg.Start, End: seg.Stop}

	case *ast.Emphasis:
		return m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *ast.Link:
		return m.mapLink(gmn)

	case *ast.Image:
		return m.mapImage(gmn)

	case *ast.RawHTML:
		return m.mapRawHTML(gmn)

	// GFM and footnote extension nodes.
	case *east.Strikethrough:
		return m.mapStrikethrough(gmn)

	case *east.Table:
		return m.mapTable(gmn)

	case *east.TaskCheckBox:
		// Goldmark keeps no source segment for the checkbox; the "[x] "
		// bytes stay uncovered and render as plain text.
		return nil

	case *east.Footnote:
		return m.mapContainer(gmn, mdast.KindFootnote, true)

	case *east.FootnoteList:
		return m.mapContainer(gmn, mdast.KindOther, false)

	default:
		// Unknown nodes keep their subtree but claim no styling of
		// their own.
		return m.mapContainer(gmNode, mdast.KindOther, false)
	}
}

// mapLinesBlock maps a block whose range comes straight from its content
// lines, trimmed of the final newline. The start is deliberately not
// extended to the line start: for paragraphs inside list items or block
// quotes the bytes before the segment are the container's marker, and
// those belong to the container span.
func (m *mapper) mapLinesBlock(gmNode ast.Node, kind mdast.Kind) *mdast.Span {
	children := m.mapChildren(gmNode)
	start, end := m.segmentRange(gmNode)
	if start < 0 {
		return nil
	}
	end = m.trimNewline(end)
	return &mdast.Span{Kind: kind, Start: start, End: end, Children: children}
}

// mapContainer maps a node whose range derives from its mapped children.
// extendToLineStart pulls the start back to the beginning of the first
// child's line, which is where implicit markers ("> ", "- ", "[^1]: ")
// live in the source.
func (m *mapper) mapContainer(gmNode ast.Node, kind mdast.Kind, extendToLineStart bool) *mdast.Span {
	children := m.mapChildren(gmNode)
	if len(children) == 0 {
		return nil
	}
	start := children[0].Start
	end := 0
	for _, child := range children {
		if child.End > end {
			end = child.End
		}
	}
	if extendToLineStart {
		start = m.lineStart(start)
	}
	return &mdast.Span{Kind: kind, Start: start, End: end, Children: children}
}

// mapHeading handles both ATX ("# Title") and setext ("Title\n===")
// headings. Goldmark's heading lines cover only the text content; the
// range is extended over the prefix or the underline respectively.
func (m *mapper) mapHeading(h *ast.Heading) *mdast.Span {
	children := m.mapChildren(h)
	cs, ce := m.segmentRange(h)
	if cs < 0 {
		return nil
	}

	start := m.lineStart(cs)
	end := m.trimNewline(ce)

	if start < len(m.content) && m.content[start] == '#' {
		// ATX: range covers the heading line, prefix included.
		end = m.lineEnd(end)
	} else {
		// Setext: extend over the underline line when present. The
		// trailing newline stays outside the span so the underline is
		// the span's final bytes.
		end = m.lineEnd(end)
		if end < len(m.content) && m.content[end] == '\n' {
			ul := end + 1
			if ul < len(m.content) && m.isSetextUnderline(ul) {
				end = m.lineEnd(ul)
			}
		}
	}

	return &mdast.Span{
		Kind:     mdast.KindHeading,
		Start:    start,
		End:      end,
		Level:    h.Level,
		Children: children,
	}
}

// mapFencedCodeBlock derives the range covering both fence lines and the
// interior. When the block has neither content lines nor an info string,
// the opening fence is found by scanning forward from the last assigned
// offset.
func (m *mapper) mapFencedCodeBlock(cb *ast.FencedCodeBlock) *mdast.Span {
	var openStart int

	lines := cb.Lines()
	switch {
	case lines.Len() > 0:
		openStart = m.prevLineStart(lines.At(0).Start)
	case cb.Info != nil:
		openStart = m.lineStart(cb.Info.Segment.Start)
	default:
		openStart = m.findFenceLine(m.lastEnd)
		if openStart < 0 {
			return nil
		}
	}

	if !m.lineIsFence(openStart) {
		// Could not locate the opening fence; fall back to the content
		// lines alone.
		if lines.Len() == 0 {
			return nil
		}
		openStart = lines.At(0).Start
	}

	end := m.lineEnd(openStart)
	var contentStart, contentEnd int
	if lines.Len() > 0 {
		contentStart = lines.At(0).Start
		contentEnd = lines.At(lines.Len() - 1).Stop
		end = m.trimNewline(contentEnd)
	} else {
		contentStart, contentEnd = end, end
	}

	// Closing fence line, if the block is terminated.
	closeLine := m.lineEnd(end)
	if closeLine < len(m.content) && m.content[closeLine] == '\n' {
		next := closeLine + 1
		if next < len(m.content) && m.lineIsFence(next) {
			end = m.lineEnd(next)
		}
	} else if m.lineIsFence(m.lineStart(end)) && m.lineStart(end) > openStart {
		end = m.lineEnd(end)
	}

	span := &mdast.Span{
		Kind:  mdast.KindCodeBlock,
		Start: openStart,
		End:   end,
	}
	span.Language = m.codeBlockLanguage(cb, contentStart, contentEnd)
	return span
}

// codeBlockLanguage returns the fence info language, falling back to
// content-based detection when the fence carries none.
func (m *mapper) codeBlockLanguage(cb *ast.FencedCodeBlock, contentStart, contentEnd int) string {
	if lang := cb.Language(m.content); lang != nil {
		return string(lang)
	}
	if contentStart >= contentEnd {
		return ""
	}
	return langdetect.Detect(m.content[contentStart:contentEnd])
}

func (m *mapper) mapIndentedCodeBlock(cb *ast.CodeBlock) *mdast.Span {
	lines := cb.Lines()
	if lines.Len() == 0 {
		return nil
	}
	start := m.lineStart(lines.At(0).Start)
	end := m.trimNewline(lines.At(lines.Len() - 1).Stop)
	return &mdast.Span{
		Kind:     mdast.KindCodeBlock,
		Start:    start,
		End:      end,
		Indented: true,
	}
}

// mapEmphasis maps emphasis and strong emphasis, extending the inner text
// range over the delimiter bytes actually present in the source.
func (m *mapper) mapEmphasis(em *ast.Emphasis) *mdast.Span {
	children := m.mapChildren(em)
	start, end := childRange(children)
	if start < 0 {
		return nil
	}

	kind := mdast.KindEmph
	if em.Level >= 2 {
		kind = mdast.KindStrong
	}

	start = m.extendBack(start, em.Level, isEmphasisByte)
	end = m.extendForward(end, em.Level, isEmphasisByte)
	return &mdast.Span{Kind: kind, Start: start, End: end, Children: children}
}

func (m *mapper) mapCodeSpan(cs *ast.CodeSpan) *mdast.Span {
	children := m.mapChildren(cs)
	start, end := childRange(children)
	if start < 0 {
		return nil
	}
	start = m.extendBack(start, len(m.content), isBacktick)
	end = m.extendForward(end, len(m.content), isBacktick)
	return &mdast.Span{Kind: mdast.KindCode, Start: start, End: end, Children: children}
}

func (m *mapper) mapStrikethrough(st *east.Strikethrough) *mdast.Span {
	children := m.mapChildren(st)
	start, end := childRange(children)
	if start < 0 {
		return nil
	}
	start = m.extendBack(start, 2, isTilde)
	end = m.extendForward(end, 2, isTilde)
	return &mdast.Span{Kind: mdast.KindStrikethrough, Start: start, End: end, Children: children}
}

func (m *mapper) mapLink(link *ast.Link) *mdast.Span {
	children := m.mapChildren(link)
	start, end := childRange(children)
	if start < 0 {
		return nil
	}
	start, end = m.extendBracketed(start, end, false)
	return &mdast.Span{
		Kind:     mdast.KindLink,
		Start:    start,
		End:      end,
		URL:      string(link.Destination),
		Children: children,
	}
}

func (m *mapper) mapImage(img *ast.Image) *mdast.Span {
	children := m.mapChildren(img)
	start, end := childRange(children)
	if start < 0 {
		return nil
	}
	start, end = m.extendBracketed(start, end, true)
	return &mdast.Span{
		Kind:     mdast.KindImage,
		Start:    start,
		End:      end,
		URL:      string(img.Destination),
		Children: children,
	}
}

func (m *mapper) mapRawHTML(raw *ast.RawHTML) *mdast.Span {
	start, end := -1, -1
	for i := range raw.Segments.Len() {
		seg := raw.Segments.At(i)
		if start < 0 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > end {
			end = seg.Stop
		}
	}
	if start < 0 {
		return nil
	}
	return &mdast.Span{Kind: mdast.KindHTMLInline, Start: start, End: end}
}

// mapTable maps a GFM table as one flat span; the compiler styles tables
// whole, so rows and cells are not modeled.
func (m *mapper) mapTable(table *east.Table) *mdast.Span {
	start, end := m.subtreeRange(table)
	if start < 0 {
		return nil
	}
	return &mdast.Span{
		Kind:  mdast.KindTable,
		Start: m.lineStart(start),
		End:   m.lineEnd(end),
	}
}

// --- range helpers ---

// segmentRange returns the raw content range goldmark knows for a node:
// line segments for blocks, text segments for inlines, the subtree
// extent otherwise. Returns (-1, -1) when nothing is known.
func (m *mapper) segmentRange(gmNode ast.Node) (int, int) {
	if t, ok := gmNode.(*ast.Text); ok {
		return t.Segment.Start, t.Segment.Stop
	}
	if gmNode.Type() != ast.TypeInline {
		if lines := gmNode.Lines(); lines.Len() > 0 {
			return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
		}
	}
	return m.subtreeRange(gmNode)
}

// subtreeRange returns the minimal range covering every segment in the
// node's subtree.
func (m *mapper) subtreeRange(gmNode ast.Node) (int, int) {
	start, end := -1, -1
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		cs, ce := m.segmentRange(child)
		if cs < 0 {
			continue
		}
		if start < 0 || cs < start {
			start = cs
		}
		if ce > end {
			end = ce
		}
	}
	return start, end
}

// childRange returns the range covering already-mapped children.
func childRange(children []*mdast.Span) (int, int) {
	if len(children) == 0 {
		return -1, -1
	}
	start := children[0].Start
	end := 0
	for _, child := range children {
		if child.End > end {
			end = child.End
		}
	}
	return start, end
}

// lineStart returns the offset of the first byte of the line containing
// pos.
func (m *mapper) lineStart(pos int) int {
	if pos > len(m.content) {
		pos = len(m.content)
	}
	for pos > 0 && m.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

// prevLineStart returns the start of the line preceding the line
// containing pos, or the line start itself on the first line.
func (m *mapper) prevLineStart(pos int) int {
	ls := m.lineStart(pos)
	if ls == 0 {
		return 0
	}
	return m.lineStart(ls - 1)
}

// lineEnd returns the offset of the newline terminating the line
// containing pos, or len(content) on the last line.
func (m *mapper) lineEnd(pos int) int {
	for pos < len(m.content) && m.content[pos] != '\n' {
		pos++
	}
	return pos
}

// trimNewline steps end back over a single trailing newline.
func (m *mapper) trimNewline(end int) int {
	if end > len(m.content) {
		end = len(m.content)
	}
	if end > 0 && m.content[end-1] == '\n' {
		end--
	}
	return end
}

// extendBack moves start backwards over up to n delimiter bytes.
func (m *mapper) extendBack(start, n int, isDelim func(byte) bool) int {
	for i := 0; i < n && start > 0 && isDelim(m.content[start-1]); i++ {
		start--
	}
	return start
}

// extendForward moves end forwards over up to n delimiter bytes.
func (m *mapper) extendForward(end, n int, isDelim func(byte) bool) int {
	for i := 0; i < n && end < len(m.content) && isDelim(m.content[end]); i++ {
		end++
	}
	return end
}

// extendBracketed grows a link or image label range over the surrounding
// "[", "]" and the destination part "(...)" or reference part "[...]",
// staying on the same line.
func (m *mapper) extendBracketed(start, end int, image bool) (int, int) {
	if start > 0 && m.content[start-1] == '[' {
		start--
		if image && start > 0 && m.content[start-1] == '!' {
			start--
		}
	}
	if end < len(m.content) && m.content[end] == ']' {
		end++
		end = m.extendDestination(end)
	}
	return start, end
}

func (m *mapper) extendDestination(end int) int {
	if end >= len(m.content) {
		return end
	}
	var closer byte
	switch m.content[end] {
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	default:
		return end
	}
	for i := end + 1; i < len(m.content) && m.content[i] != '\n'; i++ {
		if m.content[i] == closer {
			return i + 1
		}
	}
	return end
}

// lineIsFence reports whether the line starting at pos opens with a code
// fence after optional indentation.
func (m *mapper) lineIsFence(pos int) bool {
	for pos < len(m.content) && m.content[pos] == ' ' {
		pos++
	}
	return pos < len(m.content) && (m.content[pos] == '`' || m.content[pos] == '~')
}

// findFenceLine scans forward from pos for the next line opening with a
// fence. Returns -1 when none exists.
func (m *mapper) findFenceLine(pos int) int {
	if pos < 0 {
		pos = 0
	}
	ls := m.lineStart(pos)
	if pos > ls {
		// Mid-line: the previous span's line cannot also hold the fence.
		ls = m.lineEnd(ls)
		if ls < len(m.content) {
			ls++
		}
	}
	for ls < len(m.content) {
		if m.lineIsFence(ls) {
			return ls
		}
		ls = m.lineEnd(ls)
		if ls < len(m.content) {
			ls++
		}
	}
	return -1
}

// isSetextUnderline reports whether the line starting at pos consists of
// '=' or '-' characters (plus trailing spaces) only.
func (m *mapper) isSetextUnderline(pos int) bool {
	end := m.lineEnd(pos)
	if pos >= end {
		return false
	}
	marker := m.content[pos]
	if marker != '=' && marker != '-' {
		return false
	}
	for i := pos; i < end; i++ {
		if m.content[i] != marker && m.content[i] != ' ' {
			return false
		}
	}
	return true
}

func isEmphasisByte(b byte) bool {
	return b == '*' || b == '_'
}

func isBacktick(b byte) bool {
	return b == '`'
}

func isTilde(b byte) bool {
	return b == '~'
}
