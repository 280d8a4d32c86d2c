// selfstalker is a terminal arcade game where the player is hunted by a
// replay of their own movement.
//
// Usage:
//
//	selfstalker play          - Play in the local terminal
//	selfstalker scores        - Show high scores
//	selfstalker board         - Interactive scoreboard
//	selfstalker serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.selfstalker/scores.db)
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
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "selfstalker",
	Short: "Self Stalker - you can't hide from yourself",
	Long: `Self Stalker is a terminal arcade game. Collect pickups while a
shadow replays your own movement on a delay, hunting you down. Obstacles
conceal you from it, but touching one is lethal.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  selfstalker play
  selfstalker play --difficulty hard
  selfstalker serve --ssh :2222
  selfstalker scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.selfstalker/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
