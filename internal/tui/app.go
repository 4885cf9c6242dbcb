// Package tui provides the interactive Bubble Tea front-end for ethicsim.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ethicsim/internal/chat"
	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/report"
	"github.com/theirongolddev/ethicsim/internal/session"
	"github.com/theirongolddev/ethicsim/internal/tui/components"
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// exportDoneMsg is sent when a summary export finishes.
type exportDoneMsg struct {
	path       string
	err        error
	archiveErr error
}

// shareDoneMsg is sent when sharing to the clipboard finishes.
type shareDoneMsg struct {
	result report.ShareResult
	err    error
}

type chatExchange struct {
	prompt string
	reply  string
}

// Options configures a new App.
type Options struct {
	Session   *session.Session
	Config    config.Config
	Content   content.Tables
	Archive   report.Saver    // nil disables the report archive
	Clipboard report.CopyFunc // nil uses the system clipboard
	NeedSetup bool
	Logger    zerolog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	sess      *session.Session
	cfg       config.Config
	tables    content.Tables
	archive   report.Saver
	copyFn    report.CopyFunc
	exportDir string
	log       zerolog.Logger
	now       func() time.Time

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool

	notice     string
	noticeWarn bool

	// Tier change waiting for confirmation because it discards selections.
	pendingTier model.Tier

	// Chat simulation on the summary step
	chatting  bool
	chatInput textinput.Model
	chatLog   []chatExchange

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140
	minContentHeight = 5
	maxChatHistory   = 4
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) *App {
	a := &App{
		sess:      opts.Session,
		cfg:       opts.Config,
		tables:    opts.Content,
		archive:   opts.Archive,
		copyFn:    opts.Clipboard,
		exportDir: config.ExportDir(opts.Config),
		log:       opts.Logger.With().Str("component", "tui").Logger(),
		now:       time.Now,
		needSetup: opts.NeedSetup,
		chatInput: newChatInput(),
	}
	if a.copyFn == nil {
		a.copyFn = report.SystemClipboard
	}
	if a.needSetup {
		a.setupVals = NewSetupValues(a.cfg)
		a.setupForm = NewSetupForm(a.sess.Catalog(), &a.setupVals)
	}
	a.cursor = a.initialCursor()
	return a
}

func newChatInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Ask your assistant something..."
	ti.CharLimit = 200
	ti.Width = 50
	return ti
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.chatting || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			a.log.Warn().Err(msg.err).Msg("export failed")
			a.setNotice("Export failed: "+msg.err.Error(), true)
		case msg.archiveErr != nil:
			a.log.Warn().Err(msg.archiveErr).Str("path", msg.path).Msg("archive failed")
			a.setNotice("Saved "+msg.path+" (not archived)", true)
		default:
			a.setNotice("Saved "+msg.path, false)
		}
		return a, nil

	case shareDoneMsg:
		switch {
		case msg.err != nil:
			a.setNotice("Share failed: "+msg.err.Error(), true)
		case msg.result.Copied:
			a.setNotice("Summary copied to clipboard", false)
		default:
			a.setNotice("Clipboard unavailable, saved "+msg.result.FallbackPath, true)
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.chatting {
		var cmd tea.Cmd
		a.chatInput, cmd = a.chatInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.chatting {
		return a.updateChat(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.pendingTier != "" {
		tier := a.pendingTier
		a.pendingTier = ""
		if key == "y" || key == "Y" {
			return a.selectTier(tier, true)
		}
		a.setNotice("Tier unchanged", false)
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "up", "k":
		a.moveCursor(-1)
		return a, nil
	case "down", "j":
		a.moveCursor(1)
		return a, nil
	case "enter", " ", "space", "x":
		return a.chooseAtCursor()
	case "right", "l", "n", "tab":
		return a.advance()
	case "left", "h", "p", "shift+tab":
		return a.retreat()
	}

	step := a.sess.Step()
	if step == flow.StepBehavior && key == "a" {
		return a.toggleAdapt()
	}
	if step == flow.StepSummary {
		switch key {
		case "e":
			s := a.sess.Summary()
			return a, exportCmd(a.exportDir, s, a.sess.SummaryText(), a.archive, a.now())
		case "s":
			return a, shareCmd(a.copyFn, a.exportDir, a.sess.Budget().Tier, a.sess.SummaryText(), a.now())
		case "c":
			a.chatting = true
			a.chatInput.Reset()
			return a, a.chatInput.Focus()
		case "r":
			return a.restart()
		}
	}
	return a, nil
}

func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || msg.Y != stepBarRow {
			return a, nil
		}
		// Clicking an earlier step walks back to it.
		target, ok := components.StepAtX(msg.X, a.sess.Step())
		if !ok {
			return a, nil
		}
		for a.sess.Step() > target {
			if _, err := a.sess.RetreatStep(); err != nil {
				break
			}
		}
		a.cursor = a.initialCursor()
	}
	return a, nil
}

func (a *App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		ApplySetup(&a.cfg, a.setupVals)
		if err := config.Save(a.cfg); err != nil {
			a.log.Warn().Err(err).Msg("saving setup")
			a.setNotice("Could not save settings: "+err.Error(), true)
		} else {
			a.setNotice("Settings saved to "+config.Path(), false)
		}
		a.needSetup = false
		a.setupForm = nil
		a.cursor = a.initialCursor()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.chatting = false
		a.chatInput.Blur()
		return a, nil
	case "enter":
		prompt := strings.TrimSpace(a.chatInput.Value())
		if prompt == "" {
			return a, nil
		}
		reply := chat.Respond(prompt, a.sess.CurrentSelections())
		a.chatLog = append(a.chatLog, chatExchange{prompt: prompt, reply: reply})
		if len(a.chatLog) > maxChatHistory {
			a.chatLog = a.chatLog[len(a.chatLog)-maxChatHistory:]
		}
		a.chatInput.Reset()
		return a, nil
	}
	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return a, cmd
}

// ─── Actions ────────────────────────────────────────────────────

func (a *App) chooseAtCursor() (tea.Model, tea.Cmd) {
	step := a.sess.Step()
	if step == flow.StepBudget {
		if a.cursor < 0 || a.cursor >= len(model.Tiers) {
			return a, nil
		}
		tier := model.Tiers[a.cursor]
		current := a.sess.Budget().Tier
		if tier == current {
			return a, nil
		}
		if current != model.TierNone && !a.sess.CurrentSelections().Empty() {
			a.pendingTier = tier
			a.setNotice(fmt.Sprintf("Switch to %s? Your selections will be cleared. [y/N]", tier.Label()), true)
			return a, nil
		}
		return a.selectTier(tier, current != model.TierNone)
	}

	c, ok := step.Category()
	if !ok {
		return a, nil
	}
	opts := a.sess.Catalog().Options(c)
	if a.cursor < 0 || a.cursor >= len(opts) {
		return a, nil
	}
	opt := opts[a.cursor]

	before := a.sess.RemainingBudget()
	wasSelected := a.sess.IsSelected(c, opt.ID)
	snap, err := a.sess.Choose(c, opt.ID)
	if err != nil {
		a.setNotice(session.Reason(err), true)
		return a, nil
	}

	delta := snap.Budget.Remaining.Sub(before)
	switch {
	case c.MultiSelect() && wasSelected:
		a.setNotice(fmt.Sprintf("Removed %s, refunded %s", opt.Label, cli.FormatAmount(delta)), false)
	case wasSelected:
		a.clearNotice()
	case delta.IsNegative():
		a.setNotice(fmt.Sprintf("Selected %s for %s", opt.Label, cli.FormatAmount(delta.Neg())), false)
	case delta.IsPositive():
		a.setNotice(fmt.Sprintf("Switched to %s, saved %s", opt.Label, cli.FormatAmount(delta)), false)
	default:
		a.setNotice("Selected "+opt.Label, false)
	}
	return a, nil
}

func (a *App) selectTier(tier model.Tier, reset bool) (tea.Model, tea.Cmd) {
	snap, err := a.sess.SelectTier(tier, reset)
	if err != nil {
		a.setNotice(session.Reason(err), true)
		return a, nil
	}
	a.setNotice(fmt.Sprintf("%s budget: %s. Press → to continue", tier.Label(), cli.FormatAmount(snap.Budget.Total)), false)
	return a, nil
}

func (a *App) toggleAdapt() (tea.Model, tea.Cmd) {
	on := !a.sess.CurrentSelections().AdaptToUser
	if _, err := a.sess.SetAdaptToUser(on); err != nil {
		a.setNotice(session.Reason(err), true)
		return a, nil
	}
	if on {
		a.setNotice("Personalisation on", false)
	} else {
		a.setNotice("Personalisation off", false)
	}
	return a, nil
}

func (a *App) advance() (tea.Model, tea.Cmd) {
	if _, err := a.sess.AdvanceStep(); err != nil {
		if reason := session.Reason(err); reason != "" {
			a.setNotice(reason, true)
		}
		return a, nil
	}
	a.clearNotice()
	a.cursor = a.initialCursor()
	return a, nil
}

func (a *App) retreat() (tea.Model, tea.Cmd) {
	if _, err := a.sess.RetreatStep(); err != nil {
		return a, nil
	}
	a.clearNotice()
	a.cursor = a.initialCursor()
	return a, nil
}

func (a *App) restart() (tea.Model, tea.Cmd) {
	_, _ = a.sess.Reset()
	a.chatLog = nil
	a.cursor = a.initialCursor()
	a.setNotice("Starting over", false)
	return a, nil
}

func (a *App) setNotice(msg string, warn bool) {
	a.notice = msg
	a.noticeWarn = warn
}

func (a *App) clearNotice() {
	a.notice = ""
	a.noticeWarn = false
}

// listLen returns the number of rows the cursor moves over on the current step.
func (a *App) listLen() int {
	step := a.sess.Step()
	if step == flow.StepBudget {
		return len(model.Tiers)
	}
	if c, ok := step.Category(); ok {
		return len(a.sess.Catalog().Options(c))
	}
	return 0
}

func (a *App) moveCursor(delta int) {
	n := a.listLen()
	if n == 0 {
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= n {
		a.cursor = n - 1
	}
}

// initialCursor places the cursor on the current choice of the step, or on
// the configured default tier.
func (a *App) initialCursor() int {
	step := a.sess.Step()
	if step == flow.StepBudget {
		tier := a.sess.Budget().Tier
		if tier == model.TierNone {
			tier = config.DefaultTier(a.cfg)
		}
		for i, t := range model.Tiers {
			if t == tier {
				return i
			}
		}
		return 0
	}
	if c, ok := step.Category(); ok {
		for i, o := range a.sess.Catalog().Options(c) {
			if a.sess.IsSelected(c, o.ID) {
				return i
			}
		}
	}
	return 0
}

// ─── Commands ───────────────────────────────────────────────────

func exportCmd(dir string, s model.Summary, text string, saver report.Saver, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Export(dir, s.Budget.Tier, text, now)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		_, archErr := report.Archive(saver, s, text, path)
		return exportDoneMsg{path: path, archiveErr: archErr}
	}
}

func shareCmd(copyFn report.CopyFunc, dir string, tier model.Tier, text string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		res, err := report.Share(copyFn, dir, tier, text, now)
		return shareDoneMsg{result: res, err: err}
	}
}

// ─── Layout ─────────────────────────────────────────────────────

// stepBarRow is the screen row of the step bar, below the title.
const stepBarRow = 1

func (a *App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a *App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a *App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ethicsim needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a *App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Insight).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Building", []struct{ key, desc string }{
			{"j k ↑ ↓", "Move between options"},
			{"Enter Space", "Select / toggle option"},
			{"a", "Toggle personalisation (behavior step)"},
			{"→ l n", "Next step"},
			{"← h p", "Previous step"},
		}},
		{"Summary", []struct{ key, desc string }{
			{"e", "Export summary to a file"},
			{"s", "Copy summary to clipboard"},
			{"c", "Chat with your assistant"},
			{"r", "Start over"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for _, sec := range sections {
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
				descStyle.Render(bind.desc))
		}
		b.WriteString("\n")
	}

	if terms := a.tables.MatchGlossary("*"); len(terms) > 0 {
		b.WriteString(sectionStyle.Render("Glossary"))
		b.WriteString("\n")
		defW := a.width - 30
		if defW < 20 {
			defW = 20
		}
		for _, e := range terms {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-20s", e.Term)),
				descStyle.Render(truncStr(e.Definition, defW)))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func (a *App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: title, step bar, budget bar
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	budget := a.sess.Budget()
	title := " " + titleStyle.Render("◈ ethicsim") + mutedStyle.Render(" · Build an AI product")
	if budget.Tier != model.TierNone {
		title += mutedStyle.Render(fmt.Sprintf(" · %s · %s left",
			budget.Tier.Label(), cli.FormatAmount(budget.Remaining)))
	}

	header := title + "\n" + components.RenderStepBar(a.sess.Step()) + "\n"
	if budget.Tier != model.TierNone {
		header += " " + components.BudgetBar("Spent", budget.SpentPercent().InexactFloat64()/100, cw-2)
	}
	header += "\n"

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.hints(), a.notice, a.noticeWarn)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Step content
	var content string
	switch step := a.sess.Step(); step {
	case flow.StepBudget:
		content = a.renderBudgetStep(cw)
	case flow.StepSummary:
		content = a.renderSummaryStep(cw)
	default:
		content = a.renderOptionStep(step, cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a *App) hints() string {
	switch step := a.sess.Step(); step {
	case flow.StepBudget:
		return "[↑↓]move [enter]choose [→]next [?]help [q]uit"
	case flow.StepSummary:
		if a.chatting {
			return "[enter]send [esc]close chat"
		}
		return "[e]xport [s]hare [c]hat [r]estart [←]back [q]uit"
	case flow.StepBehavior:
		return "[↑↓]move [enter]choose [a]dapt [←→]steps [?]help"
	default:
		return "[↑↓]move [enter]choose [←→]steps [?]help [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
