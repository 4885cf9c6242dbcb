package tui

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run form.
type SetupValues struct {
	Theme string
	Tier  string
}

// NewSetupValues seeds the form with the current configuration.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Theme: theme.ByName(cfg.Appearance.Theme).Name,
		Tier:  string(config.DefaultTier(cfg)),
	}
}

// NewSetupForm builds the first-run form. Budgets are read from table so
// cost overrides show up in the tier labels.
func NewSetupForm(table config.CostTable, vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	tierOpts := make([]huh.Option[string], 0, len(model.Tiers))
	for _, t := range model.Tiers {
		label := fmt.Sprintf("%s (%s)", t.Label(), cli.FormatAmount(table.Budget(t)))
		tierOpts = append(tierOpts, huh.NewOption(label, string(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to ethicsim").
				Description("Build an AI product on a fixed budget and see the\nethical trade-offs behind every choice."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Default budget tier").
				Description("Highlighted first on the budget step.").
				Options(tierOpts...).
				Value(&vals.Tier),
		),
	).WithShowHelp(true)
}

// ApplySetup copies the form answers into cfg and activates the theme.
func ApplySetup(cfg *config.Config, vals SetupValues) {
	cfg.Appearance.Theme = theme.ByName(vals.Theme).Name
	if tier, ok := model.ParseTier(vals.Tier); ok {
		cfg.General.DefaultTier = string(tier)
	}
	theme.SetActive(cfg.Appearance.Theme)
}
