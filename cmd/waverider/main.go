// waverider is an endless surfing arcade game for the terminal, an SSH
// server and a desktop window.
//
// Usage:
//
//	waverider play [mode]      - Play Endless or Time Attack in the terminal
//	waverider menu             - Start the menu (modes, scores, sound, help)
//	waverider window           - Play in a desktop window
//	waverider serve            - Start SSH server for remote play
//	waverider scores [mode]    - Show high scores for a mode
//	waverider sim              - Run autopilot games headlessly
//	waverider list             - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.waverider/scores.db)
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
	Use:   "waverider",
	Short: "Wave Rider - surf the swell, grab shells, dodge whirlpools",
	Long: `Wave Rider is a surfing arcade game. Ride a rolling ocean surface,
collect shells for points and jump over whirlpools that cost a life.

Modes:
  endless  - Play until your lives run out
  timed    - Time Attack: score as much as you can in 60 seconds

Examples:
  waverider play
  waverider play timed --difficulty hard
  waverider menu
  waverider window --scale 1.5
  waverider serve --ssh :2222
  waverider scores timed
  waverider sim --runs 5 --seconds 120`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.waverider/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
