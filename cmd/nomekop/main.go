// nomekop is a small top-down exploration game: walk around town, talk to the
// neighbour and pick your first Nomekop in the house.
//
// Usage:
//
//	nomekop list              - List available variants
//	nomekop play [variant]    - Play in this terminal
//	nomekop serve             - Start SSH server for remote play
//	nomekop web               - Serve the browser client
//	nomekop journal           - Show the adventure journal
//	nomekop menu              - Pick a variant from a menu
//	nomekop replay <file>     - Summarize a frame recording
//	nomekop config            - Show the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible town
//	--db <path>         - Set journal path (default: ~/.nomekop/journal.db)
//	--config <path>     - Use a custom game config YAML
//	--log-file <path>   - Write logs to a file
//	--record <path>     - Record every frame to a zstd JSONL file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagRecord  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nomekop",
	Short: "Nomekop Town - explore a tiny town in your terminal",
	Long: `Nomekop Town is a top-down exploration game. Walk around town, talk to
the neighbour, enter the house and choose your first Nomekop.

Available commands:
  list     - Show all available variants
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the browser client
  journal  - Show which starters were chosen
  menu     - Pick a variant from a menu
  replay   - Summarize a frame recording
  config   - Show the effective configuration

Examples:
  nomekop play
  nomekop play nomekop_strict --seed 42
  nomekop serve --ssh :2222
  nomekop web --addr :8080
  nomekop play --record run.jsonl.zst && nomekop replay run.jsonl.zst`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		nomekop.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagRecord, "record", "", "Record every frame to this zstd JSONL file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
