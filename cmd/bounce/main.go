// bounce is a terminal arcade of small physics toys: bouncing shapes and a
// lane-defense game.
//
// Usage:
//
//	bounce list              - List available toys
//	bounce play <toy>        - Play a toy
//	bounce menu              - Start menu to pick toys interactively
//	bounce serve             - Start SSH server for remote play
//	bounce scores <toy>      - Show high scores for a toy
//	bounce sim               - Run the shape simulator headless
//	bounce runs              - List recorded simulation runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - Set log level for headless and server commands
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import toys to register them
	_ "github.com/vovakirdan/bounce-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/bounce-arcade/internal/games/defense"
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
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce Arcade - physics toys in your terminal",
	Long: `Bounce Arcade runs small kinematic simulations in the terminal:
shapes bouncing under adjustable gravity and a lane-defense game.

Available commands:
  list     - Show all available toys
  play     - Play a specific toy directly
  menu     - Interactive toy picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run the simulator without a terminal UI
  runs     - List recorded simulation runs

Examples:
  bounce list
  bounce play bounce --preset moon
  bounce play defense --difficulty hard
  bounce sim --ticks 3600 --record
  bounce serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger creates a stderr logger at the level chosen by --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
