package tui

import (
	"bytes"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/Abdur667/CS182-Final/internal/catanlog"
	"github.com/Abdur667/CS182-Final/internal/config"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/sim"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

const (
	DefaultInterval = 250 * time.Millisecond
	minInterval     = 10 * time.Millisecond
	maxInterval     = 5 * time.Second
)

// Options configures a viewer.
type Options struct {
	Config config.Config
	// Seed of the first game. Restarting uses the next seed.
	Seed     int64
	Interval time.Duration
	// Store receives every finished game. May be nil.
	Store  *storage.Store
	Logger *log.Logger
	Clock  quartz.Clock
	Width  int
	Height int
}

// feed collects what the game observer sees between frames. Models are
// copied by Bubble Tea, so the observer writes through a pointer.
type feed struct {
	changes int
	log     bytes.Buffer
}

// Model is the Bubble Tea model of the viewer. Agents play every seat; the
// viewer steps, pauses, undoes and redoes.
type Model struct {
	opts     Options
	table    *sim.Table
	feed     *feed
	seen     int
	saved    *game.Report
	savedID  string
	interval time.Duration
	paused   bool
	err      error
	quitting bool

	logView viewport.Model
	help    help.Model
	keys    keyMap
	width   int
	height  int
}

// NewModel creates a viewer with its first game set up.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	vp := viewport.New(opts.Width, 1)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
	}

	m := Model{
		opts:     opts,
		interval: opts.Interval,
		logView:  vp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    opts.Width,
		height:   opts.Height,
	}
	if err := m.newTable(opts.Seed); err != nil {
		return Model{}, err
	}
	m.layout()
	return m, nil
}

// newTable replaces the current game with a fresh one for seed.
func (m *Model) newTable(seed int64) error {
	f := &feed{}
	tbl, err := sim.NewTable(m.opts.Config, seed, catanlog.NewWriter(&f.log, m.opts.Clock), m.opts.Logger)
	if err != nil {
		return err
	}
	tbl.Game.AddObserver(game.ObserverFunc(func(*game.Game) { f.changes++ }))

	m.table = tbl
	m.feed = f
	m.seen = -1
	m.saved = nil
	m.savedID = ""
	m.err = nil
	m.refreshLog()
	return nil
}

// Game returns the game being shown.
func (m Model) Game() *game.Game { return m.table.Game }

// Seed returns the seed of the game being shown.
func (m Model) Seed() int64 { return m.table.Seed }

// Paused reports whether automatic stepping is stopped.
func (m Model) Paused() bool { return m.paused }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		if !m.paused {
			m.step()
			m.layout()
		}
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		m.paused = true
		if m.table.Game.CanRedo() {
			m.setErr(m.table.Game.Redo())
		} else {
			m.step()
		}

	case key.Matches(msg, m.keys.Undo):
		m.paused = true
		if m.table.Game.CanUndo() {
			m.setErr(m.table.Game.Undo())
		}

	case key.Matches(msg, m.keys.Faster):
		m.interval = max(m.interval/2, minInterval)

	case key.Matches(msg, m.keys.Slower):
		m.interval = min(m.interval*2, maxInterval)

	case key.Matches(msg, m.keys.Restart):
		m.setErr(m.newTable(m.table.Seed + 1))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	default:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	m.layout()
	m.refreshLog()
	return m, nil
}

// step advances the game by one agent decision and stores it once it ends.
func (m *Model) step() {
	g := m.table.Game
	if g.IsInGame() {
		if err := m.table.Runner.Step(); err != nil {
			m.opts.Logger.Error("step failed", "err", err)
			m.err = err
			m.paused = true
		}
	}
	m.saveFinished()
	m.refreshLog()
}

// saveFinished stores a finished game. A report reached again by redo is
// the same value and is not stored twice.
func (m *Model) saveFinished() {
	rep, ok := m.table.Game.Report()
	if !ok || rep == m.saved {
		return
	}
	m.saved = rep
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveReport(rep, m.table.Meta)
	if err != nil {
		m.opts.Logger.Error("saving game", "err", err)
		m.err = err
		return
	}
	m.savedID = id
	m.opts.Logger.Info("game stored", "id", id, "winner", rep.Winner, "turns", rep.Turns)
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.err = err
	}
}

// refreshLog copies new log lines into the viewport, following the tail.
func (m *Model) refreshLog() {
	if m.feed.changes == m.seen {
		return
	}
	m.seen = m.feed.changes
	atBottom := m.logView.AtBottom()
	m.logView.SetContent(m.feed.log.String())
	if atBottom || m.logView.YOffset == 0 {
		m.logView.GotoBottom()
	}
}

// layout sizes the log viewport to the space left under the status panes.
func (m *Model) layout() {
	used := lipgloss.Height(m.header()) + lipgloss.Height(m.panes()) + lipgloss.Height(m.footer()) + 2
	m.logView.Width = m.width
	m.logView.Height = max(m.height-used, 3)
	m.help.Width = m.width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.header() + "\n" + m.panes() + "\n" + m.logView.View() + "\n" + m.footer()
}

// Run starts the viewer on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
