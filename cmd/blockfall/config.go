package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockfall would use, as YAML.

Search order: --config, ~/.blockfall/configs/blockfall.yaml,
./configs/blockfall.yaml, then the built-in defaults. A file only needs the
keys it changes.

Examples:
  blockfall config
  blockfall config --defaults > ~/.blockfall/configs/blockfall.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
