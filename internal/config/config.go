// Package config resolves runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
)

// Environment keys. A .env file in the working directory is honored when
// the CLI loads it via godotenv before calling Load.
const (
	EnvVocab       = "BIBMV_VOCAB"        // extra junk-vocabulary YAML file
	EnvHistory     = "BIBMV_HISTORY"      // history journal path
	EnvCrossrefURL = "BIBMV_CROSSREF_URL" // CrossRef base URL override
	EnvMailto      = "BIBMV_MAILTO"       // polite-pool contact address
)

// Config is the resolved runtime configuration.
type Config struct {
	VocabPath   string
	HistoryPath string
	CrossrefURL string // empty means the client default
	Mailto      string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		VocabPath:   os.Getenv(EnvVocab),
		HistoryPath: os.Getenv(EnvHistory),
		CrossrefURL: os.Getenv(EnvCrossrefURL),
		Mailto:      os.Getenv(EnvMailto),
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = defaultHistoryPath()
	}
	return cfg
}

// defaultHistoryPath places the journal under the user config directory;
// "" when the platform reports none, which disables the journal.
func defaultHistoryPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "bibmv", "history.db")
}
