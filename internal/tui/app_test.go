package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/session"
	"github.com/theirongolddev/ethicsim/internal/store"
	"github.com/theirongolddev/ethicsim/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	reports []store.Report
}

func (r *recordingSaver) SaveReport(rep store.Report) error {
	r.reports = append(r.reports, rep)
	return nil
}

type testApp struct {
	*App
	sess  *session.Session
	dir   string
	saver *recordingSaver
}

func newTestApp(t *testing.T, clip func(string) error) testApp {
	t.Helper()
	sess := session.New(config.DefaultCostTable(), content.Default(), zerolog.Nop())
	cfg := config.DefaultConfig()
	cfg.General.ExportDir = t.TempDir()
	saver := &recordingSaver{}
	if clip == nil {
		clip = func(string) error { return nil }
	}

	a := NewApp(Options{
		Session:   sess,
		Config:    cfg,
		Content:   content.Default(),
		Archive:   saver,
		Clipboard: clip,
		Logger:    zerolog.Nop(),
	})
	a.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return testApp{App: a, sess: sess, dir: cfg.General.ExportDir, saver: saver}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys in order and runs any command produced by the last one.
func (ta testApp) press(keys ...string) {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = ta.Update(keyMsg(k))
	}
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case exportDoneMsg, shareDoneMsg:
		ta.Update(msg)
	}
}

// buildSmall walks a small-tier build to the summary:
// public + user data, minimal filtering, neutral behavior with adapt, ignore bias.
func (ta testApp) buildSmall() {
	ta.press("enter", "right")                  // small tier
	ta.press("enter", "down", "down", "enter")  // public, user
	ta.press("right", "enter")                  // minimal
	ta.press("right", "enter", "a")             // neutral + adapt
	ta.press("right", "enter", "right")         // ignore, summary
}

func TestApp_FullBuild(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.buildSmall()

	assert.Equal(t, flow.StepSummary, ta.sess.Step())
	sel := ta.sess.CurrentSelections()
	assert.Equal(t, []model.OptionID{model.DataPublic, model.DataUser}, sel.Data)
	assert.Equal(t, model.FilterMinimal, sel.Filtering)
	assert.Equal(t, model.BehaviorNeutral, sel.Behavior)
	assert.Equal(t, model.BiasIgnore, sel.Bias)
	assert.True(t, sel.AdaptToUser)
	assert.Equal(t, "33500", ta.sess.RemainingBudget().String())

	view := ta.View()
	assert.Contains(t, view, "Ethical considerations")
	assert.Contains(t, view, "$33,500")
}

func TestApp_AdvanceBlockedUntilChoice(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("right")
	assert.Equal(t, flow.StepBudget, ta.sess.Step())
	assert.Contains(t, ta.notice, "Make a choice")
	assert.True(t, ta.noticeWarn)

	ta.press("enter", "right", "right")
	assert.Equal(t, flow.StepData, ta.sess.Step(), "data needs a source before moving on")
}

func TestApp_UnavailableOptionRejected(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("enter", "right", "down", "enter") // licensed at small tier

	assert.Contains(t, ta.notice, "not available")
	assert.Empty(t, ta.sess.CurrentSelections().Data)
	assert.Equal(t, "50000", ta.sess.RemainingBudget().String())
	assert.Contains(t, ta.View(), "unavailable")
}

func TestApp_TierChangeNeedsConfirmation(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("enter", "right", "enter", "left") // small, public, back to budget
	require.Equal(t, flow.StepBudget, ta.sess.Step())
	assert.Equal(t, 0, ta.cursor, "cursor starts on the active tier")

	ta.press("down", "enter")
	assert.Equal(t, model.TierMedium, ta.pendingTier)
	ta.press("n")
	assert.Equal(t, model.TierSmall, ta.sess.Budget().Tier)
	assert.Equal(t, []model.OptionID{model.DataPublic}, ta.sess.CurrentSelections().Data)

	ta.press("enter", "y")
	assert.Equal(t, model.TierMedium, ta.sess.Budget().Tier)
	assert.True(t, ta.sess.CurrentSelections().Empty())
	assert.Equal(t, "500000", ta.sess.RemainingBudget().String())
}

func TestApp_RetreatKeepsSelections(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("enter", "right", "enter", "right", "enter")
	before := ta.sess.Snapshot()

	ta.press("left", "left")
	assert.Equal(t, flow.StepBudget, ta.sess.Step())
	assert.Equal(t, before.Selections, ta.sess.CurrentSelections())
}

func TestApp_ExportArchivesReport(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.buildSmall()
	ta.press("e")

	path := filepath.Join(ta.dir, "summary-small-20261019-090000.txt")
	assert.Contains(t, ta.notice, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AI Product Configuration Summary")

	require.Len(t, ta.saver.reports, 1)
	assert.Equal(t, path, ta.saver.reports[0].ExportPath)
}

func TestApp_ShareFallsBackToFile(t *testing.T) {
	var copied string
	ta := newTestApp(t, func(s string) error { copied = s; return nil })
	ta.buildSmall()
	ta.press("s")
	assert.Contains(t, copied, "AI Product Configuration Summary")
	assert.Equal(t, "Summary copied to clipboard", ta.notice)

	ta = newTestApp(t, func(string) error { return errors.New("no clipboard") })
	ta.buildSmall()
	ta.press("s")
	assert.Contains(t, ta.notice, "Clipboard unavailable")
	assert.True(t, ta.noticeWarn)
	assert.FileExists(t, filepath.Join(ta.dir, "summary-small-20261019-090000.txt"))
}

func TestApp_Chat(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.buildSmall()

	ta.press("c")
	require.True(t, ta.chatting)
	ta.press("h", "e", "l", "l", "o", "enter")
	require.Len(t, ta.chatLog, 1)
	assert.Equal(t, "hello", ta.chatLog[0].prompt)
	assert.Contains(t, ta.chatLog[0].reply, "Tailored")
	assert.Contains(t, ta.View(), "Try your assistant")

	// q types into the input while chatting.
	ta.press("q")
	assert.True(t, ta.chatting)
	ta.press("esc")
	assert.False(t, ta.chatting)
}

func TestApp_Restart(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.buildSmall()
	ta.press("c", "h", "i", "enter", "esc", "r")

	assert.Equal(t, flow.StepBudget, ta.sess.Step())
	assert.Equal(t, model.TierNone, ta.sess.Budget().Tier)
	assert.True(t, ta.sess.CurrentSelections().Empty())
	assert.Empty(t, ta.chatLog)
}

func TestApp_HelpOverlay(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("?")
	view := ta.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "filter bubble")

	ta.press("j")
	assert.False(t, ta.showHelp)
	assert.Equal(t, 0, ta.cursor, "closing keypress is swallowed")
}

func TestApp_CursorClamps(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("up", "up")
	assert.Equal(t, 0, ta.cursor)
	ta.press("down", "down", "down", "down")
	assert.Equal(t, len(model.Tiers)-1, ta.cursor)
}

func TestApp_ClickStepBarWalksBack(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.press("enter", "right", "enter", "right")
	require.Equal(t, flow.StepFiltering, ta.sess.Step())

	ta.Update(tea.MouseMsg{
		X:      2,
		Y:      stepBarRow,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	assert.Equal(t, flow.StepBudget, ta.sess.Step())

	// Clicking a later step does not skip ahead.
	later := 1 + components.StepVisualWidth(flow.StepBudget, flow.StepBudget) + 5
	ta.Update(tea.MouseMsg{X: later, Y: stepBarRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, flow.StepBudget, ta.sess.Step())
}

func TestApp_CompactWidthShortensCosts(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	ta.press("down", "enter", "right") // medium tier, data step

	require.Equal(t, flow.StepData, ta.sess.Step())
	view := ta.View()
	assert.Contains(t, view, "$50K")
	assert.NotContains(t, view, "$50,000")
}

func TestApp_TooNarrow(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, ta.View(), "too narrow")
}
