package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

type fakeSaver struct {
	sessions []shooter.Session
	err      error
}

func (f *fakeSaver) SaveSession(s shooter.Session) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sessions = append(f.sessions, s)
	return int64(len(f.sessions)), nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(opts Options) Model {
	opts.Logger = quietLogger()
	game := shooter.New(config.DefaultShooterConfig())
	return NewModel(game, core.DefaultConfig(), opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{})
}

func TestModelEnterStartsPlay(t *testing.T) {
	m := newTestModel(Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := tick(t, m)

	if m.state.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.state.Phase)
	}
	if cmd == nil {
		t.Error("the tick loop should continue")
	}
}

func TestModelQuitSavesRecording(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(Options{Saver: saver})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := tick(t, m)

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !m.finished || !m.quitting {
		t.Error("model should be finished and quitting")
	}
	if len(saver.sessions) != 1 {
		t.Fatalf("expected one saved session, got %d", len(saver.sessions))
	}

	sess := saver.sessions[0]
	if sess.Frames != 2 || sess.EndReason != core.EndQuit {
		t.Errorf("saved %+v", sess)
	}
	if m.Result().ReplayID != 1 {
		t.Errorf("ReplayID = %d, expected 1", m.Result().ReplayID)
	}
}

func TestModelWelcomeQuitSavesNothing(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(Options{Saver: saver})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, _ = tick(t, m)

	if !m.finished {
		t.Fatal("ctrl+c on the welcome screen should end the session")
	}
	if len(saver.sessions) != 0 {
		t.Error("a session with no play frames should not be recorded")
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(Options{Saver: saver})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, _ = tick(t, m)

	if !m.finished || m.Result().ReplayID != 0 {
		t.Errorf("session should end unsaved, result %+v", m.Result())
	}
}

func TestModelPlayback(t *testing.T) {
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	m := newTestModel(Options{Playback: []byte{fire.Mask(), 0, 0}})

	if m.state.Phase != core.PhasePlaying {
		t.Fatal("playback should skip the welcome screen")
	}

	// Keyboard input is ignored during playback
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 3; i++ {
		m, _ = tick(t, m)
	}
	if m.state.ShotsFired != 1 || m.game.Player().X != 660 {
		t.Errorf("playback diverged: %+v, x=%d", m.state, m.game.Player().X)
	}

	m, cmd := tick(t, m)
	if !m.finished || cmd == nil {
		t.Error("playback should end when the inputs run out")
	}
}

func TestModelLinger(t *testing.T) {
	m := newTestModel(Options{Linger: true})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := tick(t, m)
	if cmd != nil || m.quitting {
		t.Fatal("lingering model should stay open after the session ends")
	}
	if !strings.Contains(m.View(), "Quit. Score: 0") {
		t.Error("final view should show the result")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.quitting {
		t.Error("any key should close a lingering model")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.state.Phase != core.PhasePlaying {
		t.Error("resizing must not reset the session")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("expected a rendered frame")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(Options{ScreenshotDir: dir})

	if err := m.saveScreenshot(); err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		state core.GameState
		want  string
	}{
		{core.GameState{Score: 15, EndReason: core.EndEnemyCollision}, "Game Over! Score: 15"},
		{core.GameState{Score: 5, EndReason: core.EndQuit}, "Quit. Score: 5"},
	}
	for _, tc := range tests {
		if got := Summary(tc.state); got != tc.want {
			t.Errorf("Summary(%+v) = %q, expected %q", tc.state, got, tc.want)
		}
	}
}
