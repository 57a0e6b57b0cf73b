package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/games/bounce"
	"github.com/vovakirdan/bounce-arcade/internal/games/defense"
	"github.com/vovakirdan/bounce-arcade/internal/platform/tui"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var (
	flagConfig     string
	flagPreset     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <toy>",
	Short: "Play a toy",
	Long: `Start the specified toy.

Common controls:
  P/Space    - Pause
  R          - Restart (respawn in bounce, new round after game over)
  Ctrl+S     - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Bounce presets (--preset):
  earth, moon, zero-g, superball, mixed

Defense difficulty (--difficulty):
  easy   - Extra gold and leaks, progresses from the lowest level
  normal - Start at 30% difficulty, progresses to max
  hard   - Less gold, five leaks, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  bounce play bounce
  bounce play bounce --preset zero-g
  bounce play defense --difficulty easy
  bounce play bounce --config ./my-bounce.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom toy config YAML")
		cmd.Flags().StringVar(&flagPreset, "preset", "", "Bounce physics preset: "+presetList())
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Defense difficulty preset: easy, normal, hard, fixed")
	}
}

// presetList joins the bounce preset names for flag help.
func presetList() string {
	names := make([]string, 0, len(config.BouncePresets()))
	for _, p := range config.BouncePresets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// configureToy hands the command-line config and presets to a toy before
// it is created.
func configureToy(gameID string) error {
	switch gameID {
	case "bounce":
		bounce.SetConfigPath(flagConfig)
		return bounce.SetPreset(flagPreset)
	case "defense":
		defense.SetConfigPath(flagConfig)
		return defense.SetDifficulty(flagDifficulty)
	}
	return nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown toy %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available toys.")
		os.Exit(1)
	}

	if err := configureToy(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating toy: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the toy still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running toy: %v\n", runErr)
		os.Exit(1)
	}
}
