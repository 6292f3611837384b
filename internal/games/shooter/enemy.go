package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Enemy advances horizontally toward the player.
type Enemy struct {
	Rect  core.Rect
	Speed int // Units per frame; positive = rightward
	Color core.Color
}

// NewEnemy spawns an enemy a fixed distance left of the player's current
// position, on the player's row.
func NewEnemy(playerX, playerY int, cfg config.EnemyConfig) Enemy {
	return Enemy{
		Rect:  core.NewRect(playerX-cfg.SpawnOffset, playerY, cfg.Width, cfg.Height),
		Speed: cfg.Speed,
		Color: core.ColorEnemy,
	}
}

// Advance moves the enemy one frame.
func (e *Enemy) Advance() {
	e.Rect.X += e.Speed
}

// Expired reports whether the enemy's left edge has passed the right edge
// of a play area of the given width.
func (e Enemy) Expired(playWidth int) bool {
	return e.Rect.X > playWidth
}
