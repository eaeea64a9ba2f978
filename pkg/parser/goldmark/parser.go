// Package goldmark turns Markdown source into an mdast span forest using
// the goldmark library.
//
// Goldmark's own AST positions cover content segments only; the span tree
// contract wants ranges over the full construct, syntax markers included.
// The mapper re-derives those ranges by scanning the raw source around
// goldmark's segments.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdedit/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser converts Markdown text into a span forest.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else defaults to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts source text into an ordered span forest. The returned
// spans reference byte offsets into exactly the supplied text; sibling
// ranges are ordered and non-overlapping, children nest within parents.
//
// The text is copied before parsing so later edits by the caller cannot
// alias into the tree's backing content.
func (p *Parser) Parse(ctx context.Context, source string) ([]*mdast.Span, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	content := []byte(source)
	reader := text.NewReader(content)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(content)
	return m.mapChildren(doc), nil
}

// flavorOrDefault returns the flavor if valid, otherwise CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
