// Package term is the terminal attribute-application bridge: it consumes
// the compiler's run sequence and produces styled text. The runs arrive
// sorted, gapless and non-overlapping, so application is one linear pass
// with no overlap resolution.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gomdedit/pkg/attr"
	"github.com/yaklabco/gomdedit/pkg/colorscheme"
	"github.com/yaklabco/gomdedit/pkg/render"
)

// separatorWidth is the width of the rule drawn above H1/H2 headings.
const separatorWidth = 40

// Renderer applies attribute runs to document text for terminal output.
type Renderer struct {
	scheme colorscheme.Scheme
	color  bool
}

// NewRenderer creates a renderer resolving color tokens against scheme.
// With color disabled, token resolution is skipped but hidden syntax
// markers are still elided; hiding is document semantics, not decoration.
func NewRenderer(scheme colorscheme.Scheme, colorEnabled bool) *Renderer {
	return &Renderer{scheme: scheme, color: colorEnabled}
}

// Render applies runs to text left to right and returns the styled
// result. Runs outside the text are skipped defensively.
func (r *Renderer) Render(text string, runs []render.Run) string {
	var out strings.Builder
	out.Grow(len(text))

	for _, run := range runs {
		if run.Start < 0 || run.End > len(text) || run.Start >= run.End {
			continue
		}
		if run.Attrs.Has(attr.Hidden) {
			continue
		}
		if r.separatorBefore(text, run) {
			out.WriteString(r.separatorLine())
		}
		out.WriteString(r.applySet(text[run.Start:run.End], run.Attrs))
	}

	return out.String()
}

// separatorBefore reports whether a heading separator rule should be
// drawn above this run: the run carries the HeadingSeparator fact and
// non-whitespace content precedes it in the document. The compiler emits
// the fact unconditionally; this precedence check is the bridge's job.
func (r *Renderer) separatorBefore(text string, run render.Run) bool {
	if !run.Attrs.Has(attr.HeadingSeparator) {
		return false
	}
	return strings.TrimSpace(text[:run.Start]) != ""
}

func (r *Renderer) separatorLine() string {
	rule := strings.Repeat("─", separatorWidth)
	if r.color {
		if hex, ok := r.scheme.ResolveFg(colorscheme.TokenSyntax); ok {
			rule = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(rule)
		}
	}
	return rule + "\n"
}

func (r *Renderer) applySet(segment string, attrs attr.Set) string {
	if !r.color || attrs.IsPlain() {
		return segment
	}

	style := lipgloss.NewStyle()
	if attrs.Has(attr.Bold) {
		style = style.Bold(true)
	}
	if attrs.Has(attr.Italic) {
		style = style.Italic(true)
	}
	if attrs.Has(attr.Strikethrough) {
		style = style.Strikethrough(true)
	}
	if token := attrs.Foreground(); token != "" {
		if hex, ok := r.scheme.ResolveFg(token); ok {
			style = style.Foreground(lipgloss.Color(hex))
		}
	}
	if token := attrs.Background(); token != "" {
		if hex, ok := r.scheme.ResolveBg(token); ok {
			style = style.Background(lipgloss.Color(hex))
		}
	}

	return style.Render(segment)
}
