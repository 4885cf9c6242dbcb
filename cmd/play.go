package cmd

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/tui"
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the interactive builder (default)",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	theme.SetActive(cfg.Appearance.Theme)
	if theme.Active.Name == "terminal" {
		lipgloss.SetColorProfile(termenv.ANSI)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	closeLog, err := logToFile()
	if err != nil {
		log.Warn().Err(err).Msg("logging disabled while the TUI runs")
		log.Logger = zerolog.Nop()
		closeLog = func() {}
	}
	defer closeLog()

	sess, err := newSession()
	if err != nil {
		return err
	}

	saver, closeArchive, err := openArchive()
	if err != nil {
		log.Warn().Err(err).Msg("report archive unavailable")
	}
	defer closeArchive()

	app := tui.NewApp(tui.Options{
		Session:   sess,
		Config:    cfg,
		Content:   content.Default(),
		Archive:   saver,
		NeedSetup: flagConfig == "" && !config.Exists(),
		Logger:    log.Logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	log.Info().Str("tier", config.DefaultTier(cfg).Label()).Msg("session started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
