// stardodge is a terminal dodge game: steer your ship past asteroids
// and alien craft scrolling in from the right, scoring points for each
// obstacle you survive.
//
// Usage:
//
//	stardodge play           - Play in the current terminal
//	stardodge serve          - Start SSH server for remote play
//	stardodge config         - Print the default tuning config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardodge",
	Short: "Star Dodger - Dodge asteroids in your terminal",
	Long: `Star Dodger is a terminal dodge game. Obstacles scroll in from
the right edge of the field; steer your ship with the keyboard or mouse
and survive as long as you can. Every obstacle you slip past scores
points, and the game speeds up as your score climbs.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  config   - Print the default tuning config

Examples:
  stardodge play
  stardodge play --difficulty hard
  stardodge serve --ssh :2222
  stardodge config > ~/.stardodge/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
