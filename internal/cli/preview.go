package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/term"
)

type previewFlags struct {
	caret  int
	scheme string
}

func newPreviewCommand(root *rootFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render a Markdown file the way the editor displays it",
		Long: `Render a Markdown file to the terminal with syntax markers hidden.

With --caret, markers of the construct containing that byte position are
revealed, exactly as they would be while editing there.

Examples:
  gomdedit preview README.md
  gomdedit preview README.md --caret 42
  gomdedit preview README.md --scheme dark
  gomdedit preview README.md --scheme my-scheme.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.caret, "caret", -1, "caret byte position revealing nearby syntax")
	cmd.Flags().StringVar(&flags.scheme, "scheme", "light",
		"color scheme: light, dark, or a YAML file path")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, root *rootFlags, flags *previewFlags) error {
	session, err := openSession(cmd.Context(), path, root.flavor)
	if err != nil {
		return err
	}
	session.MoveCaret(flags.caret)

	scheme, err := resolveScheme(flags.scheme)
	if err != nil {
		return err
	}

	renderer := term.NewRenderer(scheme, term.IsColorEnabled(root.color, os.Stdout))
	cmd.Print(renderer.Render(session.Text(), session.Runs()))
	return nil
}
