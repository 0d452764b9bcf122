// trainboard runs the model railway game board in a terminal simulator.
//
// Usage:
//
//	trainboard play             - Play on the simulated board
//	trainboard run --ticks N    - Run the console headless for N ticks
//	trainboard list             - List game modes
//	trainboard graph [--check]  - Dump or verify the track graph
//	trainboard settings         - Show or reset the stored settings
//	trainboard scores [mode]    - Show high scores
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.trainboard, ./configs)
//	--fps <rate>    - Console tick rate (default: 100)
//	--seed <value>  - RNG seed (0 = time based)
//	--db <path>     - Database path (default: ~/.trainboard/trainboard.db)
//	--mode <mode>   - Start mode, label or menu index
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/trainboard/internal/modes/freeplay"
	_ "github.com/vovakirdan/trainboard/internal/modes/menu"
	_ "github.com/vovakirdan/trainboard/internal/modes/settings"
	_ "github.com/vovakirdan/trainboard/internal/modes/snake"
	_ "github.com/vovakirdan/trainboard/internal/modes/timed"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   uint32
	flagDBPath string
	flagMode   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trainboard",
	Short: "Trainboard - a model railway LED game board",
	Long: `Trainboard simulates a 144-LED model railway board with switches,
platforms and trains, plus a 3-digit display and a piezo buzzer.

Available commands:
  play      - Play on the simulated board
  run       - Run the console headless
  list      - Show the game modes
  graph     - Dump or check the track graph
  settings  - Show or reset brightness and buzzer settings
  scores    - View high scores

Examples:
  trainboard play
  trainboard play --mode snk
  trainboard run --ticks 1000 --press 20:right
  trainboard graph --check
  trainboard scores tme`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in Hz (overrides config)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Start mode: label (ply, snk, tme, set) or menu index")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(scoresCmd)
}
