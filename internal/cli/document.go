package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gomdedit/pkg/colorscheme"
	"github.com/yaklabco/gomdedit/pkg/editor"
	goldmarkparser "github.com/yaklabco/gomdedit/pkg/parser/goldmark"
)

// openSession reads the file and builds an editing session around it.
func openSession(ctx context.Context, path, flavor string) (*editor.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	session := editor.NewSession(goldmarkparser.New(flavor), editor.Options{})
	if err := session.SetText(ctx, string(data)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return session, nil
}

// resolveScheme maps a --scheme value to a color scheme: the built-in
// names "light" and "dark", or a path to a YAML scheme file.
func resolveScheme(name string) (colorscheme.Scheme, error) {
	switch name {
	case "", "light":
		return colorscheme.Light(), nil
	case "dark":
		return colorscheme.Dark(), nil
	default:
		return colorscheme.Load(name)
	}
}
