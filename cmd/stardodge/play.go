package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/A/S/D or arrows  - Move
  Mouse drag         - Follow the pointer
  Enter/Space        - Start round (in menu)
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower scroll, sparser obstacles
  medium - The default balance
  hard   - Faster scroll, denser obstacles

When --difficulty is given, the menu is skipped and the round starts
immediately. Otherwise a difficulty picker is shown first.

Examples:
  stardodge play
  stardodge play --difficulty hard
  stardodge play --config ./my-tuning.yaml
  stardodge play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	var preset config.Difficulty
	if flagDifficulty != "" {
		parsed, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		preset = parsed
	}

	simCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the renderer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(simCfg, cfg, preset); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
