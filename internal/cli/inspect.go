package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/pkg/mdast"
)

func newInspectCommand(root *rootFlags) *cobra.Command {
	var pos int

	cmd := &cobra.Command{
		Use:   "inspect FILE --pos N",
		Short: "Show which Markdown construct contains a byte position",
		Long: `Report the innermost formatting construct containing a byte position.

This is the same containment query the editor uses for contextual UI
state (e.g. highlighting the active toolbar buttons). Structural nodes
like paragraphs and list containers are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd.Context(), args[0], root.flavor)
			if err != nil {
				return err
			}

			span := mdast.FindContainingSpan(session.Spans(), pos)
			if span == nil {
				cmd.Printf("position %d: no formatting construct\n", pos)
				return nil
			}

			cmd.Printf("position %d: %s [%d,%d)", pos, span.Kind, span.Start, span.End)
			switch span.Kind {
			case mdast.KindHeading:
				cmd.Printf(" level=%d", span.Level)
			case mdast.KindLink, mdast.KindImage:
				cmd.Printf(" url=%s", span.URL)
			case mdast.KindCodeBlock:
				if span.Language != "" {
					cmd.Printf(" language=%s", span.Language)
				}
			}
			cmd.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&pos, "pos", 0, "byte position to inspect")

	return cmd
}
