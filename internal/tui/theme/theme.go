// Package theme defines color themes for the ethicsim TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Highlight    lipgloss.Color // Row under the cursor
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Focused panels
	TextDim      lipgloss.Color // Hints, unavailable options
	TextMuted    lipgloss.Color // Labels, descriptions
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color // Active step, selected options
	AccentBright lipgloss.Color
	Affordable   lipgloss.Color // Costs that fit the remaining budget
	OverBudget   lipgloss.Color // Costs that do not fit
	Unavailable  lipgloss.Color // Options not offered at the tier
	Insight      lipgloss.Color // Ethical commentary headings
	Caution      lipgloss.Color // Notices and confirmations
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Highlight:    lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Affordable:   lipgloss.Color("#879A39"),
	OverBudget:   lipgloss.Color("#DA702C"),
	Unavailable:  lipgloss.Color("#D14D41"),
	Insight:      lipgloss.Color("#CE5D97"),
	Caution:      lipgloss.Color("#D0A215"),
}

// FlexokiLight is the paper-coloured variant for light terminals.
var FlexokiLight = Theme{
	Name:         "flexoki-light",
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	Highlight:    lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#CECDC3"),
	BorderAccent: lipgloss.Color("#24837B"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	AccentBright: lipgloss.Color("#3AA99F"),
	Affordable:   lipgloss.Color("#66800B"),
	OverBudget:   lipgloss.Color("#BC5215"),
	Unavailable:  lipgloss.Color("#AF3029"),
	Insight:      lipgloss.Color("#A02F6F"),
	Caution:      lipgloss.Color("#AD8301"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Highlight:    lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Affordable:   lipgloss.Color("#A6E3A1"),
	OverBudget:   lipgloss.Color("#FAB387"),
	Unavailable:  lipgloss.Color("#F38BA8"),
	Insight:      lipgloss.Color("#F5C2E7"),
	Caution:      lipgloss.Color("#F9E2AF"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Highlight:    lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Affordable:   lipgloss.Color("2"),
	OverBudget:   lipgloss.Color("3"),
	Unavailable:  lipgloss.Color("1"),
	Insight:      lipgloss.Color("5"),
	Caution:      lipgloss.Color("11"),
}

// All available themes.
var All = []Theme{FlexokiDark, FlexokiLight, CatppuccinMocha, Terminal}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
