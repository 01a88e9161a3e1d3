package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Phase is where the game screen is in its ready/play/over cycle.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseOver
)

// GameOptions describes one game session.
type GameOptions struct {
	ModeID   string
	Title    string
	Settings snake.Settings
	Runtime  core.RuntimeConfig
	Scores   storage.ScoreStore // nil plays without persistence
	Logger   *log.Logger
}

// simDoneMsg is sent when the simulation goroutine returns.
type simDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the game screen.
//
// The simulation runs on its own goroutine through snake.Runner. The model
// never touches engine state while it runs: it only requests directions and
// reads published snapshots on the frame clock. Initialize is called only
// before the runner starts or after it has reported back.
type Model struct {
	opts    GameOptions
	engine  *snake.Engine
	keeper  *storage.Keeper
	screen  *core.Screen
	keys    GameKeyMap
	help    help.Model
	logger  *log.Logger
	cancel  context.CancelFunc
	phase   Phase
	newHigh bool

	quitting  bool
	goingBack bool
}

// NewModel creates the game screen and initializes the first game.
func NewModel(opts GameOptions) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts := []snake.Option{snake.WithLogger(logger)}
	if opts.Runtime.Seed != 0 {
		engineOpts = append(engineOpts, snake.WithSeed(uint64(opts.Runtime.Seed)))
	}
	engine := snake.NewEngine(engineOpts...)
	if err := engine.Initialize(opts.Settings); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:   opts,
		engine: engine,
		keeper: storage.NewKeeper(opts.Scores, opts.ModeID, logger),
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:   DefaultGameKeyMap(),
		help:   h,
		logger: logger,
		phase:  PhaseReady,
	}, nil
}

// Init starts the render clock. The simulation starts on the first key press.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if m.quitting || m.goingBack {
			return m, nil
		}
		return m, frameCmd(m.opts.Runtime.FPS)

	case simDoneMsg:
		return m.handleSimDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.stop()
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.phase {
	case PhaseReady:
		// Any key starts the game; a steering key also sets the first turn.
		if d, ok := m.keys.Direction(msg); ok {
			m.engine.RequestDirection(d)
		}
		return m.start()

	case PhasePlaying:
		if d, ok := m.keys.Direction(msg); ok {
			m.engine.RequestDirection(d)
		}

	case PhaseOver:
		if key.Matches(msg, m.keys.Restart) {
			if err := m.engine.Initialize(m.engine.Settings()); err != nil {
				m.logger.Error("cannot restart game", "error", err)
				return m, nil
			}
			m.phase = PhaseReady
			m.newHigh = false
		}
	}

	return m, nil
}

// start launches the simulation goroutine.
func (m Model) start() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := snake.NewRunner(m.engine, m.opts.Runtime.TickInterval, m.logger)

	m.cancel = cancel
	m.phase = PhasePlaying
	m.logger.Info("game started", "mode", m.opts.ModeID, "best", m.keeper.Best())

	return m, func() tea.Msg {
		return simDoneMsg{err: runner.Run(ctx)}
	}
}

// stop cancels a running simulation, if any.
func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// handleSimDone records the finished game.
func (m Model) handleSimDone(msg simDoneMsg) (tea.Model, tea.Cmd) {
	m.stop()
	if errors.Is(msg.err, context.Canceled) {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Error("simulation failed", "error", msg.err)
	}

	snap := m.engine.CurrentSnapshot()
	m.newHigh = m.keeper.Submit(snap.Score(), snap.SnakeLen(), string(snap.Outcome()))
	m.phase = PhaseOver
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	snake.Render(m.engine.CurrentSnapshot(), m.screen, snake.HUD{
		Title:     m.opts.Title,
		HighScore: m.keeper.Best(),
		Ready:     m.phase == PhaseReady,
		NewHigh:   m.newHigh,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Phase returns the current phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Snapshot returns the latest published game state.
func (m Model) Snapshot() *snake.Snapshot {
	return m.engine.CurrentSnapshot()
}

// Best returns the best score for the mode, including this session.
func (m Model) Best() int {
	return m.keeper.Best()
}

// IsGoingBack returns true if the player asked to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the game screen. It returns true if the player wants the menu
// back, false if they quit.
func Run(opts GameOptions) (goBack bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
