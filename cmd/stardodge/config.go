package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning config",
	Long: `Print the built-in default tuning config as YAML.

Redirect the output to a file, edit it, and pass it back with --config
(or save it as ~/.stardodge/config.yaml to have it picked up
automatically).

Examples:
  stardodge config
  stardodge config > ~/.stardodge/config.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
