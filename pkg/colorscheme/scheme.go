// Package colorscheme resolves the symbolic color tokens emitted by the
// attribute-run compiler into concrete colors. The compiler itself never
// sees a color value; only bridges consult a scheme.
package colorscheme

// Foreground color tokens.
const (
	TokenHeading       = "heading"
	TokenLink          = "link"
	TokenCodeFg        = "code_fg"
	TokenSyntax        = "syntax"
	TokenStrikethrough = "strikethrough"
	TokenBlockquote    = "blockquote"
	TokenListMarker    = "list_marker"
)

// Background color tokens.
const (
	TokenCodeBg      = "code_bg"
	TokenCodeBlockBg = "code_block_bg"
)

// Scheme maps the closed token vocabulary to hex colors ("#rrggbb").
type Scheme struct {
	Name string `yaml:"name"`

	Heading       string `yaml:"heading"`
	Link          string `yaml:"link"`
	CodeFg        string `yaml:"code_fg"`
	Syntax        string `yaml:"syntax"`
	Strikethrough string `yaml:"strikethrough"`
	Blockquote    string `yaml:"blockquote"`
	ListMarker    string `yaml:"list_marker"`

	CodeBg      string `yaml:"code_bg"`
	CodeBlockBg string `yaml:"code_block_bg"`
}

// Light is the built-in light scheme.
func Light() Scheme {
	return Scheme{
		Name:          "light",
		Heading:       "#1a1a1a",
		Link:          "#1a66cc",
		CodeFg:        "#333333",
		Syntax:        "#b3b3b3",
		Strikethrough: "#808080",
		Blockquote:    "#666680",
		ListMarker:    "#4d4d66",
		CodeBg:        "#f0f0f5",
		CodeBlockBg:   "#ededf2",
	}
}

// Dark is the built-in dark scheme.
func Dark() Scheme {
	return Scheme{
		Name:          "dark",
		Heading:       "#f2f2f2",
		Link:          "#66b3ff",
		CodeFg:        "#d9d9d9",
		Syntax:        "#666666",
		Strikethrough: "#8c8c8c",
		Blockquote:    "#808ca6",
		ListMarker:    "#8c99b3",
		CodeBg:        "#2b2b2e",
		CodeBlockBg:   "#29292b",
	}
}

// ResolveFg resolves a foreground token to a hex color. Returns "" and
// false for unknown tokens so callers can leave the text color alone.
func (s Scheme) ResolveFg(token string) (string, bool) {
	switch token {
	case TokenHeading:
		return s.Heading, true
	case TokenLink:
		return s.Link, true
	case TokenCodeFg:
		return s.CodeFg, true
	case TokenSyntax:
		return s.Syntax, true
	case TokenStrikethrough:
		return s.Strikethrough, true
	case TokenBlockquote:
		return s.Blockquote, true
	case TokenListMarker:
		return s.ListMarker, true
	default:
		return "", false
	}
}

// ResolveBg resolves a background token to a hex color.
func (s Scheme) ResolveBg(token string) (string, bool) {
	switch token {
	case TokenCodeBg:
		return s.CodeBg, true
	case TokenCodeBlockBg:
		return s.CodeBlockBg, true
	default:
		return "", false
	}
}
