package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Bullet is a projectile travelling horizontally at constant speed.
type Bullet struct {
	Rect  core.Rect
	Speed int // Units per frame; negative = leftward
}

// NewBullet creates a bullet fired from (x, y).
// The rectangle is offset from the fire point by the configured amount.
func NewBullet(x, y int, cfg config.BulletConfig) Bullet {
	return Bullet{
		Rect:  core.NewRect(x+cfg.OffsetX, y+cfg.OffsetY, cfg.Width, cfg.Height),
		Speed: cfg.Speed,
	}
}

// Advance moves the bullet one frame. There is no bounds clamp.
func (b *Bullet) Advance() {
	b.Rect.X += b.Speed
}

// Expired reports whether the bullet has left the play area on the left.
func (b Bullet) Expired() bool {
	return b.Rect.Right() < 0
}
