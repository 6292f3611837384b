package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// Options configures a terminal session.
type Options struct {
	// Saver stores the recording when the session ends. Nil disables recording.
	Saver shooter.SessionSaver

	// Playback replays recorded inputs instead of reading the keyboard.
	// The welcome screen is skipped.
	Playback []byte

	// Logger receives session events. Nil uses the default logger.
	Logger *log.Logger

	// HoldFrames is the movement key hold window; see DefaultHoldFrames.
	HoldFrames int

	// Linger keeps the final score on screen until a key is pressed
	// instead of exiting as soon as the session ends.
	Linger bool

	// ScreenshotDir is where Ctrl+S writes frames. Empty uses
	// ~/.shooter/screenshots.
	ScreenshotDir string
}

// Result describes how a terminal session ended.
type Result struct {
	State    core.GameState
	ReplayID int64 // 0 if the session was not saved
}

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	game     *shooter.Game
	screen   *core.Screen
	canvas   *CellCanvas
	keys     *KeyMapper
	rec      *shooter.Recording
	playback *shooter.Playback
	opts     Options
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	replayID int64
	finished bool // session over; showing the final score if lingering
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game *shooter.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	play := game.Config().PlayArea

	game.Reset(cfg)

	m := Model{
		game:   game,
		screen: screen,
		canvas: NewCellCanvas(screen, play.Width, play.Height),
		keys:   NewKeyMapper(opts.HoldFrames),
		rec:    shooter.NewRecording(),
		opts:   opts,
		logger: logger,
		config: cfg,
	}

	if opts.Playback != nil {
		m.playback = shooter.NewPlayback(opts.Playback)
		game.Start()
	}
	m.state = game.State()

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}

	// Quit goes through the game so the recording ends on the quit frame
	m.keys.HandleKey(msg)
	return m, nil
}

// handleResize processes window resize events.
// The world is fixed-size, so only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	in := m.keys.Frame()
	if m.playback != nil {
		next, ok := m.playback.Next()
		if !ok || in.Has(core.ActionQuit) {
			return m.finish()
		}
		in = next
	}

	result := m.rec.Step(m.game, in)
	m.state = result.State

	if m.state.Terminated() {
		return m.finish()
	}

	return m, tickCmd(m.game.TickRate())
}

// finish records the session and either quits or lingers on the result.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.finished = true
	m.keys.Release()

	m.logger.Info("session ended",
		"reason", m.state.EndReason,
		"score", m.state.Score,
		"frames", m.state.PlayFrames,
	)

	if m.playback == nil && m.opts.Saver != nil && m.rec.Len() > 0 {
		id, err := m.opts.Saver.SaveSession(m.rec.Session(m.game))
		if err != nil {
			m.logger.Warn("could not save recording", "error", err)
		} else {
			m.replayID = id
			m.logger.Debug("recording saved", "id", id, "frames", m.rec.Len())
		}
	}

	if m.opts.Linger {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() error {
	m.game.Render(m.canvas)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".shooter", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.finished {
		return lipgloss.Place(
			m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center,
			resultStyle.Render(Summary(m.state)+"\n\npress any key"),
		)
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

var resultStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("160")).
	Padding(1, 3)

// Result returns how the session ended.
func (m Model) Result() Result {
	return Result{State: m.state, ReplayID: m.replayID}
}

// Summary is the one-line outcome shown after a session.
func Summary(state core.GameState) string {
	if state.EndReason == core.EndEnemyCollision {
		return fmt.Sprintf("Game Over! Score: %d", state.Score)
	}
	return fmt.Sprintf("Quit. Score: %d", state.Score)
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game *shooter.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
