package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/platform/tui"
	"github.com/vovakirdan/tui-nomekop/internal/registry"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in this terminal",
	Long: `Start Nomekop Town in this terminal. The default variant is "nomekop".

Controls:
  W/A/S/D, arrows  - Move
  E                - Talk to the neighbour / use a door
  B, I             - Show your Nomekop's moves
  Enter            - Start
  R                - Build a new town and start over
  1/2/3            - Choose Blue, Red or Green in the house
  Tab              - Adventure journal
  ?                - Toggle help
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  nomekop play
  nomekop play nomekop_strict
  nomekop play --seed 42 --config ./my-town.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "nomekop"
	if len(args) == 1 {
		gameID = args[0]
	}

	if _, ok := registry.Lookup(gameID); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'nomekop list' to see available variants.")
		os.Exit(1)
	}

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

	// The terminal belongs to the game; logs only go to --log-file.
	logger, closeLog, err := newLogger("nomekop", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	stopRecording, err := startRecording(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{
		Player: playerName(),
		Logger: logger,
	})

	stopRecording()
	if ce, ok := game.(interface{ ConfigError() error }); ok && ce.ConfigError() != nil {
		fmt.Fprintf(os.Stderr, "Warning: config ignored, defaults used: %v\n", ce.ConfigError())
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName is the name written to journal rows for local play.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
