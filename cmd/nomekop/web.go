package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nomekop/internal/platform/web"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

var (
	flagWebAddr string
	flagWebGame string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser client",
	Long: `Serve a canvas client and a WebSocket endpoint. Every browser tab gets
its own town.

Examples:
  nomekop web                    # Listen on :8080
  nomekop web --addr :9000
  nomekop web --seed 42          # Every tab gets the same town

Then open http://localhost:8080/?name=ash`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagWebGame, "game", "nomekop", "Variant every tab plays")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("nomekop-web", os.Stderr)
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
	defer stopRecording()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server, err := web.NewServer(web.Config{
		Address:  flagWebAddr,
		GameID:   flagWebGame,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving Nomekop Town on http://localhost%s/\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
