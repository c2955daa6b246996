// novafall is a terminal arcade shooter: pilot a lone ship against a
// deepening rain of asteroids and raiders, bank nova charge, and survive.
//
// Usage:
//
//	novafall play            - Play locally in the current terminal
//	novafall scores          - Browse the run history
//	novafall serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.novafall/runs.db)
//	--mute          - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "novafall",
	Short: "Novafall - a terminal arcade shooter",
	Long: `Novafall is a terminal arcade shooter. Dodge falling asteroids,
shoot down raiders, collect power-ups, and spend a full nova charge on a
screen-clearing pulse.

Available commands:
  play     - Play locally in the current terminal
  scores   - Browse the run history
  serve    - Start SSH server for remote play

Examples:
  novafall play
  novafall play --seed 42 --mute
  novafall scores --plain
  novafall serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.novafall/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
