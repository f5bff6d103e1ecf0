// Package initcmd provides the init command for doxmd.
package initcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/doxymd/internal/config"
	"github.com/open-cli-collective/doxymd/internal/view"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize doxmd configuration",
		Long: `Initialize doxmd defaults interactively.

The configuration is saved to ~/.config/doxmd/config.yml and supplies
defaults for output format, delimiter stripping and logging. Every
value can still be overridden per-invocation with flags or DOXMD_*
environment variables.`,
		Example: `  # Interactive setup
  doxmd init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runInit(noColor)
		},
	}
}

func runInit(noColor bool) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{OutputFormat: "table", LogLevel: "info"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for tabular command output").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("debug", "debug"),
					huh.NewOption("info", "info"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&cfg.LogLevel),

			huh.NewConfirm().
				Title("Strip comment delimiters by default?").
				Description("Treat convert input as /** ... */ blocks").
				Value(&cfg.Extract),

			huh.NewConfirm().
				Title("Disable colored output?").
				Value(&cfg.NoColor),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	renderer := view.NewRenderer(view.FormatPlain, noColor)
	renderer.Success("Configuration saved to " + configPath)
	return nil
}
