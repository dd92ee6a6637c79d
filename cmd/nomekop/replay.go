package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nomekop/internal/recorder"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Summarize a frame recording",
	Long: `Read a recording made with --record and print what happened.

Examples:
  nomekop play --record run.jsonl.zst
  nomekop replay run.jsonl.zst`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	r, err := recorder.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	s, err := recorder.Summarize(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading recording after %d frames: %v\n", s.Frames, err)
		os.Exit(1)
	}

	fmt.Printf("Recording %s\n", args[0])
	fmt.Println()
	fmt.Printf("  Frames:         %d\n", s.Frames)
	if s.Frames > 0 {
		fmt.Printf("  Ticks:          %d - %d\n", s.FirstTick, s.LastTick)
	}
	fmt.Printf("  Scene changes:  %d\n", s.SceneChanges)
	fmt.Printf("  Resets:         %d\n", s.Resets)

	starter := string(s.Starter)
	if starter == "" {
		starter = "none"
	}
	fmt.Printf("  Starter:        %s\n", starter)

	if len(s.Dialogs) > 0 {
		fmt.Println()
		fmt.Println("Dialogs:")
		for _, d := range s.Dialogs {
			fmt.Printf("  - %s\n", strings.TrimSpace(d))
		}
	}
}
