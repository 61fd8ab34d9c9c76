package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables that override the config file.
const (
	EnvFilingStatus = "TAXLENS_FILING_STATUS"
	EnvLedger       = "TAXLENS_LEDGER"
	EnvBracketsFile = "TAXLENS_BRACKETS_FILE"
	EnvHistoryPath  = "TAXLENS_HISTORY_PATH"
	EnvItemized     = "TAXLENS_ITEMIZED_TOTAL"
)

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none
// are given) into the process environment. Variables already set win.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays TAXLENS_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v := getEnv(EnvFilingStatus); v != "" {
		cfg.General.FilingStatus = v
	}
	if v := getEnv(EnvLedger); v != "" {
		cfg.General.Ledger = v
	}
	if v := getEnv(EnvBracketsFile); v != "" {
		cfg.Tables.BracketsFile = v
	}
	if v := getEnv(EnvHistoryPath); v != "" {
		cfg.History.Path = v
	}
	if v := getEnv(EnvItemized); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", EnvItemized, v)
		}
		f := d.InexactFloat64()
		cfg.Deductions.ItemizedTotal = &f
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
