// Package convert provides the convert command for doxmd.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/doxymd/internal/config"
	"github.com/open-cli-collective/doxymd/internal/extract"
	"github.com/open-cli-collective/doxymd/internal/logging"
	"github.com/open-cli-collective/doxymd/pkg/dox"
)

type convertOptions struct {
	extract  bool
	html     bool
	fromHTML bool
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a documentation comment to Markdown",
		Long: `Convert one Doxygen-style documentation comment body to Markdown.

Reads from the file argument, or from stdin when no file is given.
The input is the raw comment body; pass --extract when it still
carries comment delimiters (/** ... */, ///).`,
		Example: `  # Convert a comment body from stdin
  echo '@brief Adds two numbers.' | doxmd convert

  # Strip /** ... */ delimiters first
  doxmd convert --extract comment.h

  # Emit rendered HTML instead of Markdown
  doxmd convert --html comment.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runConvert(file, opts, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&opts.extract, "extract", false, "Strip comment delimiters before converting")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the generated Markdown to HTML")
	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "Treat the input as an HTML fragment and convert it to Markdown")

	return cmd
}

func runConvert(file string, opts *convertOptions, stdin io.Reader, stdout io.Writer) error {
	logger := logging.Default()

	input, err := readInput(file, stdin)
	if err != nil {
		return err
	}

	// Config supplies defaults for behavior not set by flags.
	if cfg, err := config.LoadWithEnv(config.DefaultConfigPath()); err == nil {
		if cfg.Extract && !opts.extract {
			opts.extract = true
		}
	}

	if opts.extract {
		input = extract.Strip(input)
		logger.Debug("stripped comment delimiters", "bytes", len(input))
	}

	var output string
	switch {
	case opts.fromHTML:
		output, err = dox.FromHTML(input)
	case opts.html:
		output, err = dox.ToHTML(input)
	default:
		output, err = dox.ToMarkdown(input)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	logger.Debug("converted comment", "in_bytes", len(input), "out_bytes", len(output))
	fmt.Fprintln(stdout, output)
	return nil
}

// readInput returns the contents of file, or of stdin when file is empty.
func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
