// Package root provides the root command for the doxmd CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/doxymd/internal/cmd/completion"
	"github.com/open-cli-collective/doxymd/internal/cmd/convert"
	"github.com/open-cli-collective/doxymd/internal/cmd/emojicmd"
	"github.com/open-cli-collective/doxymd/internal/cmd/initcmd"
	"github.com/open-cli-collective/doxymd/internal/logging"
	"github.com/open-cli-collective/doxymd/internal/version"
)

// NewCmdRoot creates the root command for doxmd.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doxmd",
		Short: "Translate Doxygen-style documentation comments to Markdown",
		Long: `doxmd converts documentation comments written in the Doxygen
tag dialect (@param, @returns, @brief, ...) into Markdown that
documentation renderers understand.

Feed it one comment body on stdin or from a file:

  doxmd convert comment.txt

Get started by running: doxmd init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logging.SetLevel("debug")
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	// Set version template
	cmd.SetVersionTemplate("doxmd version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(emojicmd.NewCmdEmoji())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
