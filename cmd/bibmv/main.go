// Package main provides the bibmv CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibmv",
	Short: "Rename documents to canonical surname-year form",
	Long: `bibmv renames document files to a canonical surname-year.<ext> form.

Evidence about the first author and publication year is collected from
embedded metadata (exiftool), first-page text, and a CrossRef lookup when
a DOI is found, then merged under a fixed priority order. Renames are
collision-safe, confirmable, and journaled for undo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
