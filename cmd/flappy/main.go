// flappy is a terminal flappy-bird game with regenerating lives.
//
// Usage:
//
//	flappy menu              - Start menu with difficulty picker and scores
//	flappy play              - Play directly
//	flappy sim               - Run a headless deterministic simulation
//	flappy hearts            - Show lives and the next heart countdown
//	flappy scores            - Show best score, coin total and top runs
//	flappy config show       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/flappy.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through pipes in your terminal",
	Long: `Flappy is a terminal flappy-bird game. Every crash costs a heart;
hearts come back over real time, even while the game is closed.

Available commands:
  menu     - Interactive start menu
  play     - Play directly
  sim      - Headless deterministic run
  hearts   - Lives and next heart countdown
  scores   - Best score and run history
  config   - Inspect the configuration

Examples:
  flappy menu
  flappy play --difficulty hard
  flappy sim --seed 42 --ticks 3600 --jump-every 22
  flappy scores --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to the progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(heartsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, nil
}
