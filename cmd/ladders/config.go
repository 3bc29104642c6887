package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladders/internal/config"
)

var flagEnvHelp bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print effective settings",
	Long: `Print the settings in effect after reading the settings file and
LADDERS_* environment variables. The output is valid config.yml.

Examples:
  ladders config > ~/.ladders/config.yml
  ladders config --env`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEnvHelp, "env", false, "List supported environment variables")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagEnvHelp {
		fmt.Println(config.Usage())
		return nil
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(settings)
}
