// Package editor hosts the per-document editing session: it owns the
// current text, the cached span forest, and the latest attribute runs,
// and knows which of those a given change invalidates. A content edit
// re-parses and recompiles; a caret-only move recompiles against the
// cached tree.
//
// Sessions are not safe for concurrent use; hosts serialize calls per
// document, matching the synchronous one-call-per-keystroke model.
package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/mdast"
	"github.com/yaklabco/gomdedit/pkg/render"
)

// Parser turns source text into a span forest. Implemented by
// parser/goldmark.Parser.
type Parser interface {
	Parse(ctx context.Context, source string) ([]*mdast.Span, error)
}

// Options configures a session.
type Options struct {
	// Render holds the compilation defaults (base font size, line
	// spacing). Zero value uses the package defaults.
	Render render.Options

	// Logger receives debug timing entries. Nil uses the default logger.
	Logger *log.Logger
}

// Session is the editing state for one open document.
type Session struct {
	parser Parser
	opts   Options
	logger *log.Logger

	text  string
	spans []*mdast.Span
	caret render.Caret
	runs  []render.Run
}

// NewSession creates an empty session around the given parser.
func NewSession(parser Parser, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{
		parser: parser,
		opts:   opts,
		logger: logger,
		caret:  render.NoCaret,
	}
}

// SetText replaces the document content: re-parse, then recompile runs.
// The caret position is retained.
func (s *Session) SetText(ctx context.Context, text string) error {
	started := time.Now()
	spans, err := s.parser.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	s.text = text
	s.spans = spans
	s.recompute()

	s.logger.Debug("document reparsed",
		logging.FieldBytes, len(text),
		logging.FieldSpans, countSpans(spans),
		"took", time.Since(started))
	return nil
}

// MoveCaret updates the caret and recompiles runs against the cached
// span forest, skipping the re-parse. Negative positions clear the caret.
func (s *Session) MoveCaret(pos int) {
	s.caret = render.CaretAt(pos)
	s.recompute()
}

// ClearCaret hides all syntax markers again.
func (s *Session) ClearCaret() {
	s.caret = render.NoCaret
	s.recompute()
}

// Text returns the current document content.
func (s *Session) Text() string {
	return s.text
}

// Spans returns the cached span forest. Callers must treat it as
// read-only.
func (s *Session) Spans() []*mdast.Span {
	return s.spans
}

// Runs returns the latest compiled attribute runs.
func (s *Session) Runs() []render.Run {
	return s.runs
}

// Caret returns the current caret position.
func (s *Session) Caret() render.Caret {
	return s.caret
}

// ContainingSpan returns the innermost formatting span under the caret,
// or nil when the caret is unset or over plain text.
func (s *Session) ContainingSpan() *mdast.Span {
	if s.caret < 0 {
		return nil
	}
	return mdast.FindContainingSpan(s.spans, int(s.caret))
}

func (s *Session) recompute() {
	started := time.Now()
	s.runs = render.Compute(s.text, s.spans, s.caret, s.opts.Render)
	s.logger.Debug("runs recompiled",
		logging.FieldRuns, len(s.runs),
		logging.FieldCaret, int(s.caret),
		"took", time.Since(started))
}

func countSpans(spans []*mdast.Span) int {
	n := 0
	//nolint:errcheck // Walk only returns nil errors in this usage
	mdast.Walk(spans, func(*mdast.Span) error {
		n++
		return nil
	})
	return n
}
