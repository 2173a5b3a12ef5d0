package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bibmv/bibmv/internal/config"
	"github.com/bibmv/bibmv/internal/history"
)

func init() {
	rootCmd.AddCommand(undoCmd)
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the most recent rename",
	Long: `Revert the most recent journaled rename. The undo is refused when the
renamed file has moved away or the original name is occupied again.`,
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
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

	entry, err := db.LastApplied()
	if err != nil {
		return err
	}
	if entry == nil {
		log.Info("nothing to undo")
		return nil
	}

	current := filepath.Join(entry.Dir, entry.NewName)
	original := filepath.Join(entry.Dir, entry.OldName)

	if _, err := os.Stat(current); err != nil {
		return fmt.Errorf("cannot undo, %s is gone: %w", current, err)
	}
	if _, err := os.Stat(original); err == nil {
		return fmt.Errorf("cannot undo, %s already exists", original)
	}
	if err := os.Rename(current, original); err != nil {
		return fmt.Errorf("undoing rename: %w", err)
	}
	if err := db.MarkUndone(entry.ID); err != nil {
		return err
	}

	log.Info("undone", "from", entry.NewName, "to", entry.OldName)
	return nil
}
