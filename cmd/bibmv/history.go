package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bibmv/bibmv/internal/config"
	"github.com/bibmv/bibmv/internal/history"
)

var flagHistoryLimit int

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "Maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently applied renames",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.HistoryPath == "" {
		return fmt.Errorf("no history journal configured (set %s)", config.EnvHistory)
	}

	db, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no renames recorded")
		return nil
	}
	for _, e := range entries {
		marker := " "
		if e.Undone {
			marker = "u"
		}
		fmt.Printf("%s %s  %s: %s -> %s\n",
			marker, e.When.Local().Format(time.DateTime), e.Dir, e.OldName, e.NewName)
	}
	return nil
}
