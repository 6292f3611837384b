package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables",
	Long: `Print the tunables a game would start with, after applying the
config search order. The output is a valid config file.

Examples:
  shooter config > ~/.shooter/configs/shooter.yaml
  shooter config --format toml
  shooter config --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Encode(cmd.OutOrStdout(), cfg, format)
}
