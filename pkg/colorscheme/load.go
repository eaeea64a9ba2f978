package colorscheme

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// hexColorRe matches the "#rrggbb" form every scheme value must use.
var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Load reads a scheme from a YAML file. Missing tokens fall back to the
// light scheme's values; unknown keys and malformed colors are rejected.
func Load(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("read scheme: %w", err)
	}

	scheme, err := Parse(data)
	if err != nil {
		return Scheme{}, fmt.Errorf("parse scheme %s: %w", path, err)
	}
	return scheme, nil
}

// Parse decodes YAML scheme data, strict about unknown keys.
func Parse(data []byte) (Scheme, error) {
	scheme := Light()
	scheme.Name = ""

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scheme{}, fmt.Errorf("decode yaml: %w", err)
	}

	for key, value := range raw {
		if key == "name" {
			scheme.Name = value
			continue
		}
		if !hexColorRe.MatchString(value) {
			return Scheme{}, fmt.Errorf("token %q: color %q is not #rrggbb", key, value)
		}
		if err := scheme.set(key, value); err != nil {
			return Scheme{}, err
		}
	}

	if scheme.Name == "" {
		scheme.Name = "custom"
	}
	return scheme, nil
}

func (s *Scheme) set(token, color string) error {
	switch token {
	case TokenHeading:
		s.Heading = color
	case TokenLink:
		s.Link = color
	case TokenCodeFg:
		s.CodeFg = color
	case TokenSyntax:
		s.Syntax = color
	case TokenStrikethrough:
		s.Strikethrough = color
	case TokenBlockquote:
		s.Blockquote = color
	case TokenListMarker:
		s.ListMarker = color
	case TokenCodeBg:
		s.CodeBg = color
	case TokenCodeBlockBg:
		s.CodeBlockBg = color
	default:
		return fmt.Errorf("unknown color token %q", token)
	}
	return nil
}
