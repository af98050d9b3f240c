package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML, ready to be edited and
passed back with --config. With --validate, check a file instead.

Examples:
  slicer config > ~/.slicer/configs/slicer.yaml
  slicer config --validate ./my-slicer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate a config file and exit")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagValidate == "" {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	if _, err := config.Load(flagValidate); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", flagValidate)
	return nil
}
