package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/taxlens/internal/advisor"
)

// Config holds all taxlens configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Deductions DeductionsConfig `toml:"deductions"`
	Tables     TablesConfig     `toml:"tables"`
	Advice     AdviceConfig     `toml:"advice"`
	History    HistoryConfig    `toml:"history"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	FilingStatus string `toml:"filing_status"`
	Ledger       string `toml:"ledger,omitempty"`
}

// DeductionsConfig holds the itemized deduction inputs.
type DeductionsConfig struct {
	ForceItemize  bool     `toml:"force_itemize"`
	ItemizedTotal *float64 `toml:"itemized_total,omitempty"`
}

// TablesConfig points at custom bracket schedules and overrides the
// built-in standard deductions.
type TablesConfig struct {
	BracketsFile string `toml:"brackets_file,omitempty"`
	// StandardDeduction is keyed by filing status name or slug.
	StandardDeduction map[string]float64 `toml:"standard_deduction,omitempty"`
}

// AdviceConfig replaces the built-in advisory hints when Hints is non-empty.
type AdviceConfig struct {
	Hints []advisor.Hint `toml:"hints,omitempty"`
}

// HistoryConfig controls the estimate history database.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			FilingStatus: "Single",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taxlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taxlens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "taxlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "taxlens")
}

// HistoryPath returns the history database path, honoring the config.
func (c Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(CacheDir(), "history.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
// Keys absent from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parsing config: unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the config location
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
