package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Session is the outcome of one recorded game.
type Session struct {
	Score     int
	Frames    int
	EndReason core.EndReason
	Hash      uint64
	PlayFPS   int
	Inputs    []byte
}

// SessionSaver persists finished sessions.
type SessionSaver interface {
	SaveSession(s Session) (int64, error)
}

// Recording captures the input mask of every play frame. The simulation has
// no randomness, so the masks alone reproduce a session.
type Recording struct {
	inputs []byte
}

// NewRecording creates an empty recording.
func NewRecording() *Recording {
	return &Recording{}
}

// Step advances g by one frame, recording the input if g is in play.
// Welcome frames are not recorded; replays skip the welcome screen.
func (r *Recording) Step(g *Game, in core.InputFrame) core.StepResult {
	if g.State().Phase == core.PhasePlaying {
		r.inputs = append(r.inputs, in.Mask())
	}
	return g.Step(in)
}

// Len returns the number of recorded frames.
func (r *Recording) Len() int {
	return len(r.inputs)
}

// Inputs returns the recorded masks.
func (r *Recording) Inputs() []byte {
	return r.inputs
}

// Session summarizes the recording together with the game's final state.
func (r *Recording) Session(g *Game) Session {
	state := g.State()
	return Session{
		Score:     state.Score,
		Frames:    len(r.inputs),
		EndReason: state.EndReason,
		Hash:      g.Snapshot().Hash(),
		PlayFPS:   g.TickRate(),
		Inputs:    r.inputs,
	}
}

// Playback feeds recorded masks back one frame at a time.
type Playback struct {
	inputs []byte
	pos    int
}

// NewPlayback creates a playback over recorded masks.
func NewPlayback(inputs []byte) *Playback {
	return &Playback{inputs: inputs}
}

// Next returns the next recorded frame, or false once exhausted.
func (p *Playback) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.inputs) {
		return core.NewInputFrame(), false
	}
	in := core.FrameFromMask(p.inputs[p.pos])
	p.pos++
	return in, true
}

// Done reports whether every frame has been played.
func (p *Playback) Done() bool {
	return p.pos >= len(p.inputs)
}

// Position returns how many frames have been played.
func (p *Playback) Position() int {
	return p.pos
}

// Simulate replays recorded masks from the first play frame without
// rendering. It stops early if the session ends before the inputs do.
func Simulate(cfg config.ShooterConfig, runtime core.RuntimeConfig, inputs []byte) *Game {
	g := New(cfg)
	g.Reset(runtime)
	g.Start()

	pb := NewPlayback(inputs)
	for !g.State().Terminated() {
		in, ok := pb.Next()
		if !ok {
			break
		}
		g.Step(in)
	}
	return g
}
