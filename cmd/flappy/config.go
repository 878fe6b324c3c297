package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagShowConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration flappy would use, after merging the file found
on the search path (or --config) over the built-in defaults.

Search order:
  --config path
  ~/.flappy/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config show
  flappy config show --config ./my-flappy.yaml > tuned.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the config search path",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, p := range config.SearchPaths() {
			fmt.Println(p)
		}
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathsCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagShowConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if path := config.Resolve(flagShowConfig); path != "" {
		fmt.Fprintf(os.Stderr, "# from %s\n", path)
	} else {
		fmt.Fprintln(os.Stderr, "# built-in defaults")
	}
	os.Stdout.Write(data)
	return nil
}
