package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Options configures a terminal game.
type Options struct {
	Runtime core.RuntimeConfig
	Player  string         // Recorded with saved scores
	Trail   bool           // Paint the drop trail
	Store   *storage.Store // Optional; nil disables high scores
	Logger  *log.Logger    // Optional; nil discards
}

// scoreKeeper persists the final score of each game and tracks the best one.
// It is shared by pointer so the value-typed Model sees updates.
type scoreKeeper struct {
	store  *storage.Store
	logger *log.Logger
	player string
	lines  func() int
	best   int
}

func newScoreKeeper(opts Options, lines func() int) *scoreKeeper {
	k := &scoreKeeper{
		store:  opts.Store,
		logger: opts.Logger,
		player: opts.Player,
		lines:  lines,
	}
	if k.store != nil {
		best, err := k.store.HighScore()
		if err != nil {
			k.logger.Warn("could not load high score", "error", err)
		}
		k.best = best
	}
	return k
}

// ScoreChanged implements blockfall.Listener.
func (k *scoreKeeper) ScoreChanged(score int) {
	k.logger.Debug("score changed", "player", k.player, "score", score)
}

// GameOver implements blockfall.Listener. Saving is best effort.
func (k *scoreKeeper) GameOver(score int) {
	lines := k.lines()
	k.logger.Info("game over", "player", k.player, "score", score, "lines", lines)
	k.best = max(k.best, score)
	if k.store == nil || score == 0 {
		return
	}
	if _, err := k.store.SaveScore(k.player, score, lines); err != nil {
		k.logger.Error("could not save score", "error", err)
	}
}

// Model is the Bubble Tea model for one player's blockfall session.
type Model struct {
	session  *blockfall.Session
	screen   *core.Screen
	keeper   *scoreKeeper
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	player   string
	trail    bool
	quitting bool
}

// NewModel creates an idle game. The player starts it with Enter.
func NewModel(session *blockfall.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.ScreenW == 0 || rt.ScreenH == 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	keeper := newScoreKeeper(opts, session.Lines)
	session.Subscribe(keeper)

	return Model{
		session: session,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		keeper:  keeper,
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		player:  opts.Player,
		trail:   opts.Trail,
	}
}

// Init waits for the first key press; no tick is armed while idle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		m.session.Start()
		m.logger.Debug("game started", "player", m.player, "epoch", m.session.Epoch())
		if m.session.Phase() != blockfall.PhasePlaying {
			return m, nil
		}
		return m, tickCmd(m.session.Interval(), m.session.Epoch())
	}

	m.session.Apply(action)
	return m, nil
}

// handleTick runs one gravity step and re-arms the timer with the current
// interval. Ticks from an earlier game are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.session.Epoch() {
		m.logger.Debug("stale tick dropped", "tick_epoch", msg.Epoch, "epoch", m.session.Epoch())
		return m, nil
	}
	if m.session.Phase() != blockfall.PhasePlaying {
		return m, nil
	}

	m.session.Tick()
	if m.session.Phase() != blockfall.PhasePlaying {
		return m, nil
	}
	return m, tickCmd(m.session.Interval(), m.session.Epoch())
}

// saveScreenshot writes the current screen as plain text. Best effort.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("blockfall_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	blockfall.Render(m.screen, m.session.Frame(), blockfall.RenderOptions{
		Best:   m.keeper.best,
		Player: m.player,
		Trail:  m.trail,
	})
}

// View renders the game followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the underlying session.
func (m Model) Session() *blockfall.Session {
	return m.session
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(session *blockfall.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
