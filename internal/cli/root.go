// Package cli provides the Cobra command structure for gomdedit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug  bool
	color  string
	flavor string
}

// NewRootCommand creates the root gomdedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdedit",
		Short: "Live Markdown rendering from the command line",
		Long: `gomdedit is the rendering core of a live Markdown editor.

It parses Markdown into a span tree, compiles the tree plus an optional
caret position into a flat sequence of attribute runs, and applies those
runs for display. Syntax markers are hidden except near the caret, which
is what makes the editing experience feel WYSIWYG while the document
stays plain Markdown.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.flavor, "flavor", "gfm",
		"markdown flavor: commonmark, gfm")

	// Add subcommands.
	rootCmd.AddCommand(newPreviewCommand(flags))
	rootCmd.AddCommand(newRunsCommand(flags))
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	rootCmd.SetOut(os.Stdout)

	return rootCmd
}
