package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bibmv/bibmv/internal/config"
	"github.com/bibmv/bibmv/internal/crossref"
	"github.com/bibmv/bibmv/internal/evidence"
	"github.com/bibmv/bibmv/internal/history"
	"github.com/bibmv/bibmv/internal/metadata"
	"github.com/bibmv/bibmv/internal/name"
	"github.com/bibmv/bibmv/internal/pdftext"
	"github.com/bibmv/bibmv/internal/rename"
)

var (
	flagDryRun    bool
	flagYes       bool
	flagVerbose   bool
	flagNoLookup  bool
	flagNoHistory bool
	flagLogPath   string
)

func init() {
	renameCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "Show proposed renames without touching the filesystem")
	renameCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Apply renames without asking for confirmation")
	renameCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	renameCmd.Flags().BoolVar(&flagNoLookup, "no-lookup", false, "Skip the CrossRef lookup (offline run)")
	renameCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not journal applied renames")
	renameCmd.Flags().StringVar(&flagLogPath, "log", "", "Append one 'original -> proposed' line per rename to this file")
	rootCmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:   "rename [paths...]",
	Short: "Rename documents to surname-year form",
	Long: `Rename each document to surname-year.<ext>, reconciling evidence from
embedded metadata, first-page text, and a DOI lookup. Directories are
walked recursively for PDFs; documents are processed one at a time, in
discovery order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := config.Load()
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	// The metadata tool is the one hard dependency; fail the whole run
	// before touching any document.
	if _, err := exec.LookPath(metadata.DefaultBin); err != nil {
		log.Error("required dependency missing", "binary", metadata.DefaultBin)
		os.Exit(ExitMissingDependency)
	}

	docs, err := discover(args)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Warn("no documents found")
		os.Exit(ExitError)
	}
	log.Debug("discovered documents", "count", len(docs))

	vocab, err := name.LoadVocabulary(cfg.VocabPath)
	if err != nil {
		return err
	}

	gatherer := &evidence.Gatherer{
		Metadata: &metadata.ExifTool{},
		Text:     pdftext.Reader{},
	}
	if !flagNoLookup {
		var opts []crossref.Option
		if cfg.CrossrefURL != "" {
			opts = append(opts, crossref.WithBaseURL(cfg.CrossrefURL))
		}
		if cfg.Mailto != "" {
			opts = append(opts, crossref.WithMailto(cfg.Mailto))
		}
		gatherer.Lookup = crossref.NewClient(opts...)
	}

	tx := &rename.Transaction{DryRun: flagDryRun}
	if !flagYes && !flagDryRun {
		tx.Confirm = stdinConfirm
	}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		tx.Log = f
	}

	var journal *history.DB
	if !flagDryRun && !flagNoHistory && cfg.HistoryPath != "" {
		journal, err = openJournal(cfg.HistoryPath)
		if err != nil {
			log.Warn("history journal unavailable", "err", err)
		} else {
			defer journal.Close()
		}
	}

	ctx := cmd.Context()
	totals := make(map[rename.Outcome]int)
	for _, doc := range docs {
		surnames, years := gatherer.Gather(ctx, doc)
		proposal, ok := evidence.Resolve(surnames, years, vocab)
		res := tx.Apply(doc, proposal, ok)
		totals[res.Outcome]++
		report(res, proposal, ok)

		if res.Outcome == rename.Renamed && journal != nil {
			err := journal.Record(filepath.Dir(doc), filepath.Base(doc), filepath.Base(res.NewPath))
			if err != nil {
				log.Warn("journaling rename", "err", err)
			}
		}
	}

	printSummary(totals)
	if totals[rename.Renamed]+totals[rename.ProposedDryRun] == 0 {
		os.Exit(ExitError)
	}
	return nil
}

// discover expands args into the ordered document list: files are taken
// as-is, directories are walked recursively for PDFs.
func discover(args []string) ([]string, error) {
	var docs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			docs = append(docs, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
				docs = append(docs, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	return docs, nil
}

// report logs one document's outcome. Dry-run mappings go to stdout so
// they can be piped; everything else goes through the logger.
func report(res rename.Result, proposal evidence.Proposal, ok bool) {
	base := filepath.Base(res.OldPath)
	switch res.Outcome {
	case rename.Renamed:
		log.Info("renamed", "from", base, "to", filepath.Base(res.NewPath))
	case rename.ProposedDryRun:
		fmt.Printf("%s -> %s\n", base, filepath.Base(res.NewPath))
	case rename.SkippedUnchanged:
		log.Info("already canonical", "file", base)
	case rename.SkippedNoEvidence:
		log.Info("insufficient evidence", "file", base)
	case rename.SkippedUserDeclined:
		log.Info("declined", "file", base)
	case rename.SkippedMoveFailed:
		log.Error("move failed", "file", base, "err", res.Err)
	case rename.CollisionUnresolved:
		log.Warn("collision unresolved", "file", base, "proposed", proposal.Filename(filepath.Ext(res.OldPath)))
	}
	if ok {
		log.Debug("resolution",
			"file", base,
			"surname", proposal.Surname, "surname_source", proposal.SurnameSource,
			"year", proposal.Year, "year_source", proposal.YearSource)
	}
}

// printSummary prints the run totals for every outcome that occurred.
func printSummary(totals map[rename.Outcome]int) {
	order := []rename.Outcome{
		rename.Renamed, rename.ProposedDryRun, rename.SkippedUnchanged,
		rename.SkippedNoEvidence, rename.SkippedUserDeclined,
		rename.SkippedMoveFailed, rename.CollisionUnresolved,
	}
	var parts []string
	for _, o := range order {
		if n := totals[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", o, n))
		}
	}
	log.Info("done", "summary", strings.Join(parts, ", "))
}

// openJournal opens the history DB, creating its directory if needed.
func openJournal(path string) (*history.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return history.Open(path)
}
