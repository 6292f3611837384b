package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the controllable character. Its hitbox is a synthetic
// rectangle independent of the drawn sprite.
type Player struct {
	X, Y  int
	W, H  int
	Speed int
}

// NewPlayer places the player at its configured start position.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:     cfg.StartX,
		Y:     cfg.StartY,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Rect returns the player's collision rectangle at its current position.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Move applies held direction input and clamps x to [0, playWidth-W].
// Holding both directions cancels out.
func (p *Player) Move(in core.InputFrame, playWidth int) {
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
	}
	p.X = core.Clamp(p.X, 0, playWidth-p.W)
}
