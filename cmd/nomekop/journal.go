package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-nomekop/internal/platform/tui"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalPlain bool
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the adventure journal",
	Long: `Display which starters were chosen, newest first.

Interactive in a terminal; use --plain for scripts.

Examples:
  nomekop journal
  nomekop journal --plain --limit 5
  nomekop journal --clear`,
	Run: runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 10, "Entries to print with --plain")
	journalCmd.Flags().BoolVar(&flagJournalPlain, "plain", false, "Print instead of opening the journal screen")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete every journal entry")
}

func runJournal(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagJournalClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing journal: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Journal cleared.")
		return
	}

	if !flagJournalPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunJournal(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running journal: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printJournal(store)
}

func printJournal(store *storage.Store) {
	entries, err := store.Recent(flagJournalLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Adventure Journal")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No adventures recorded yet.")
		fmt.Println()
		fmt.Println("Run 'nomekop play' and pick a starter in the house!")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-8s  %s\n", "Trainer", "Starter", "Ticks", "Date")
	fmt.Printf("  %-16s  %-7s  %-8s  %s\n", "-------", "-------", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-7s  %-8d  %s\n", e.Player, e.Starter, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := store.CountByStarter()
	if err == nil && len(counts) > 0 {
		fmt.Println()
		fmt.Printf("Most chosen: %s (%d)\n", counts[0].Starter, counts[0].Count)
	}
}
