package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bibmv/bibmv/internal/config"
	"github.com/bibmv/bibmv/internal/name"
)

func init() {
	rootCmd.AddCommand(vocabCmd)
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the effective junk vocabulary",
	Long: `Print the junk-classifier vocabulary: built-in terms merged with the
YAML file named by ` + config.EnvVocab + `, one term per line.`,
	RunE: runVocab,
}

func runVocab(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := config.Load()

	vocab, err := name.LoadVocabulary(cfg.VocabPath)
	if err != nil {
		return err
	}
	for _, term := range vocab.Terms() {
		fmt.Println(term)
	}
	return nil
}
