// Package window runs the shooter in a desktop window using Ebitengine.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// Options configures a window session.
type Options struct {
	// Saver stores the recording when the session ends. Nil disables recording.
	Saver shooter.SessionSaver

	// Playback replays recorded inputs instead of reading the keyboard.
	Playback []byte

	// Logger receives session events. Nil uses the default logger.
	Logger *log.Logger
}

// Result describes how a window session ended.
type Result struct {
	State    core.GameState
	ReplayID int64
}

// Game adapts shooter.Game to ebiten.Game.
type Game struct {
	game     *shooter.Game
	rec      *shooter.Recording
	playback *shooter.Playback
	opts     Options
	logger   *log.Logger
	state    core.GameState
	tps      int
	replayID int64
}

// NewGame resets game and wraps it for ebiten.
func NewGame(game *shooter.Game, runtime core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(runtime)
	g := &Game{
		game:   game,
		rec:    shooter.NewRecording(),
		opts:   opts,
		logger: logger,
	}
	if opts.Playback != nil {
		g.playback = shooter.NewPlayback(opts.Playback)
		game.Start()
	}
	g.state = game.State()
	return g
}

// readInput samples the keyboard and mouse for one frame.
// Movement is level-triggered; fire and click are edge-triggered.
func readInput() core.InputFrame {
	in := core.NewInputFrame()

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionClick)
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	in := readInput()

	if g.playback != nil {
		next, ok := g.playback.Next()
		if !ok || in.Has(core.ActionQuit) {
			return g.finish()
		}
		in = next
	}

	g.state = g.rec.Step(g.game, in).State
	if g.state.Terminated() {
		return g.finish()
	}

	// The welcome screen and play run at different rates
	if rate := g.game.TickRate(); rate != g.tps {
		g.tps = rate
		ebiten.SetTPS(rate)
	}
	return nil
}

// finish saves the recording and stops the loop.
func (g *Game) finish() error {
	g.logger.Info("session ended",
		"reason", g.state.EndReason,
		"score", g.state.Score,
		"frames", g.state.PlayFrames,
	)

	if g.playback == nil && g.opts.Saver != nil && g.rec.Len() > 0 {
		id, err := g.opts.Saver.SaveSession(g.rec.Session(g.game))
		if err != nil {
			g.logger.Warn("could not save recording", "error", err)
		} else {
			g.replayID = id
		}
	}
	return ebiten.Termination
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.worldSize()
	g.game.Render(NewCanvas(screen, w, h))
}

// Layout fixes the logical screen to the play area; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.worldSize()
}

func (g *Game) worldSize() (int, int) {
	play := g.game.Config().PlayArea
	return play.Width, play.Height
}

// Result returns how the session ended.
func (g *Game) Result() Result {
	return Result{State: g.state, ReplayID: g.replayID}
}

// Run opens a window and blocks until the session ends.
func Run(game *shooter.Game, runtime core.RuntimeConfig, opts Options) (Result, error) {
	g := NewGame(game, runtime, opts)
	w, h := g.worldSize()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)

	g.tps = game.TickRate()
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.Result(), err
	}
	return g.Result(), nil
}
