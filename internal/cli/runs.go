package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/pkg/attr"
	"github.com/yaklabco/gomdedit/pkg/render"
)

func newRunsCommand(root *rootFlags) *cobra.Command {
	var caret int

	cmd := &cobra.Command{
		Use:   "runs FILE",
		Short: "Dump the compiled attribute runs for a file",
		Long: `Compile a Markdown file into attribute runs and print them.

Each line shows one run: its byte range and its presentation facts. The
sequence always partitions the whole file with no gaps or overlaps,
which makes this the quickest way to debug unexpected styling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd.Context(), args[0], root.flavor)
			if err != nil {
				return err
			}
			session.MoveCaret(caret)

			for _, run := range session.Runs() {
				cmd.Println(formatRun(run))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&caret, "caret", -1, "caret byte position revealing nearby syntax")

	return cmd
}

// formatRun renders one run as "[start,end) fact fact ...".
func formatRun(run render.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d,%d)", run.Start, run.End)

	if run.Attrs.IsPlain() {
		b.WriteString(" plain")
		return b.String()
	}

	for _, fact := range run.Attrs.Attrs() {
		b.WriteByte(' ')
		b.WriteString(fact.Kind.String())
		switch fact.Kind {
		case attr.FontSize, attr.LineSpacing:
			fmt.Fprintf(&b, "(%g)", fact.Size)
		case attr.ForegroundColor, attr.BackgroundColor:
			fmt.Fprintf(&b, "(%s)", fact.Token)
		}
	}
	return b.String()
}
