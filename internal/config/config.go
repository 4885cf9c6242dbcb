// Package config loads ethicsim settings and the option cost table.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all ethicsim configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
	Costs      CostOverrides    `toml:"costs"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultTier string `toml:"default_tier,omitempty"`
	ExportDir   string `toml:"export_dir,omitempty"`
	Archive     bool   `toml:"archive"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the structured log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// CostOverrides allows user-defined prices for specific options.
type CostOverrides struct {
	Overrides map[string]CostOverride `toml:"overrides,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultTier: string(model.TierSmall),
			Archive:     true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ethicsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ethicsim")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// ArchivePath returns the location of the exported report archive.
func ArchivePath() string {
	return filepath.Join(Dir(), "reports.db")
}

// LogPath returns the log file used while the TUI owns the terminal.
func LogPath(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(Dir(), "ethicsim.log")
}

// ExportDir returns where exported summaries are written.
func ExportDir(cfg Config) string {
	if cfg.General.ExportDir != "" {
		return cfg.General.ExportDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DefaultTier returns the configured default tier, falling back to small.
func DefaultTier(cfg Config) model.Tier {
	if t, ok := model.ParseTier(cfg.General.DefaultTier); ok {
		return t
	}
	return model.TierSmall
}

// LoadCostTable builds the cost table for cfg: the defaults with any overrides.
func LoadCostTable(cfg Config) (CostTable, error) {
	t, err := DefaultCostTable().WithOverrides(cfg.Costs.Overrides)
	if err != nil {
		return CostTable{}, fmt.Errorf("applying cost overrides: %w", err)
	}
	return t, nil
}
