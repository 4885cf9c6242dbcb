// Package cmd implements the ethicsim CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/report"
	"github.com/theirongolddev/ethicsim/internal/session"
	"github.com/theirongolddev/ethicsim/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagNoArchive bool
)

// cfg is loaded once before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "ethicsim",
	Short: "Build an AI product on a budget and explore its ethical trade-offs",
	Long: "ethicsim walks you through building an AI assistant with a fixed budget:\n" +
		"pick training data, content filtering, behavior and bias handling, then\n" +
		"review what your choices cost and what they mean.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runPlay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoArchive, "no-archive", false, "Don't record exported summaries")
}

func prepare(_ *cobra.Command, _ []string) error {
	loaded, err := config.LoadFrom(configPath())
	if err != nil {
		return err
	}
	cfg = loaded
	setupLogging(os.Stderr)
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// logLevel resolves the level from the flag, then the config, then info.
func logLevel() zerolog.Level {
	name := flagLogLevel
	if name == "" {
		name = cfg.Log.Level
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func setupLogging(out io.Writer) {
	zerolog.SetGlobalLevel(logLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// logToFile sends logs to the log file while the TUI owns the terminal.
func logToFile() (func(), error) {
	path := config.LogPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

func newSession() (*session.Session, error) {
	table, err := config.LoadCostTable(cfg)
	if err != nil {
		return nil, err
	}
	return session.New(table, content.Default(), log.Logger), nil
}

// openArchive returns the report archive, or a nil Saver when archiving is off.
func openArchive() (report.Saver, func(), error) {
	noop := func() {}
	if flagNoArchive || !cfg.General.Archive {
		return nil, noop, nil
	}
	a, err := store.Open(config.ArchivePath())
	if err != nil {
		return nil, noop, err
	}
	return a, func() { _ = a.Close() }, nil
}
