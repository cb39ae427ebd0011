// flappy is a terminal Flappy Bird game.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible obstacle runs
//	--config <path>   - Path to a custom tuning YAML
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
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `A terminal Flappy Bird: tap space to flap, pass through the pipes,
don't touch anything.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  config   - Print the default tuning YAML

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-tuning.yaml
  flappy serve --ssh :2222
  flappy config > ~/.flappy/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
