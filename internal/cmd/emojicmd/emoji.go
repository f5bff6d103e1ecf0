// Package emojicmd provides commands for inspecting the emoji shortcode
// table used by @emoji directives.
package emojicmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/doxymd/internal/view"
	"github.com/open-cli-collective/doxymd/pkg/symbols"
)

// NewCmdEmoji creates the emoji command.
func NewCmdEmoji() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Inspect the emoji shortcode table",
		Long: `Inspect the shortcode table consulted by @emoji directives.

An @emoji directive whose shortcode is missing from this table fails
the whole conversion, so these commands help find the right code.`,
	}

	cmd.AddCommand(newCmdList())
	cmd.AddCommand(newCmdGet())

	return cmd
}

func newCmdList() *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List known emoji shortcodes",
		Example: `  # All shortcodes
  doxmd emoji list

  # Shortcodes starting with "ok"
  doxmd emoji list ok

  # As JSON
  doxmd emoji list ok --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			output, _ := cmd.Flags().GetString("output")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runList(prefix, output, noColor, nil)
		},
	}
}

func newCmdGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <shortcode>",
		Short: "Look up one emoji shortcode",
		Example: `  doxmd emoji get ok_hand
  doxmd emoji get :relieved:`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runGet(args[0], output, noColor, nil)
		},
	}
}

func runList(prefix, output string, noColor bool, renderer *view.Renderer) error {
	if err := view.ValidateFormat(output); err != nil {
		return err
	}
	if renderer == nil {
		renderer = view.NewRenderer(view.Format(output), noColor)
	}

	table := symbols.Default()
	codes := make([]string, 0, len(table))
	for code := range table {
		if strings.HasPrefix(code, prefix) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	if len(codes) == 0 {
		return fmt.Errorf("no shortcodes matching %q", prefix)
	}

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		glyph, _ := table.Lookup(code)
		rows = append(rows, []string{code, glyph})
	}

	renderer.RenderTable([]string{"SHORTCODE", "GLYPH"}, rows)
	return nil
}

func runGet(code, output string, noColor bool, renderer *view.Renderer) error {
	if err := view.ValidateFormat(output); err != nil {
		return err
	}
	if renderer == nil {
		renderer = view.NewRenderer(view.Format(output), noColor)
	}

	// Accept the :colon: form the dialect uses
	code = strings.Trim(code, ":")

	glyph, ok := symbols.Default().Lookup(code)
	if !ok {
		return fmt.Errorf("unknown shortcode %q", code)
	}

	renderer.RenderKeyValue(code, glyph)
	return nil
}
