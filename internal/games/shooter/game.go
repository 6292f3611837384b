// Package shooter implements a side-view arcade shooter.
// The player moves along the bottom of the play area and fires left at
// enemies that spawn behind them and walk right. One enemy reaching the
// player ends the session.
package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Enemy decoration sizes, in world units.
const (
	enemyEyeRadius = 10
	enemyGunLength = 15
)

// Game owns one session: welcome screen, play field, and the final state.
// All mutable state lives here; there are no package-level singletons.
type Game struct {
	cfg       config.ShooterConfig
	runtime   core.RuntimeConfig
	phase     core.Phase
	endReason core.EndReason

	welcome   Welcome
	character Character
	player    Player
	bullets   []Bullet
	enemies   []Enemy
	spawner   *Spawner

	score         int
	welcomeFrames int
	playFrames    int
	shotsFired    int
	enemiesDown   int
}

// New creates a game with the given tunables. Call Reset before stepping.
func New(cfg config.ShooterConfig) *Game {
	return &Game{
		cfg:       cfg,
		character: LoadCharacter(),
		spawner:   NewSpawner(cfg.Spawn.Interval),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "2D Shooter"
}

// Config returns the tunables the game was created with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset puts the game back on the welcome screen with an empty field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = core.PhaseWelcome
	g.endReason = core.EndNone
	g.welcome = NewWelcome()
	g.player = NewPlayer(g.cfg.Player)
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.spawner.Reset()
	g.score = 0
	g.welcomeFrames = 0
	g.playFrames = 0
	g.shotsFired = 0
	g.enemiesDown = 0
}

// Start leaves the welcome screen. It has no effect once play has begun.
func (g *Game) Start() {
	if g.phase == core.PhaseWelcome {
		g.phase = core.PhasePlaying
	}
}

// TickRate returns the frame rate for the current screen.
// A positive RuntimeConfig.TickRate overrides the play rate.
func (g *Game) TickRate() int {
	if g.phase == core.PhaseWelcome {
		return g.cfg.Timing.WelcomeFPS
	}
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return g.cfg.Timing.PlayFPS
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseWelcome:
		g.stepWelcome(in)
	case core.PhasePlaying:
		g.stepPlaying(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepWelcome(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.terminate(core.EndQuit)
		return
	}

	g.welcomeFrames++
	g.welcome.Advance()

	if in.Has(core.ActionClick) {
		g.phase = core.PhasePlaying
	}
}

// stepPlaying runs one frame of play. Order matters: fire, move, spawn,
// advance bullets, advance enemies (a player hit ends the frame), then
// bullet-enemy resolution.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.terminate(core.EndQuit)
		return
	}

	g.playFrames++
	playW := g.cfg.PlayArea.Width

	if in.Has(core.ActionFire) {
		g.bullets = append(g.bullets, NewBullet(
			g.player.X+g.cfg.Player.MuzzleX,
			g.player.Y+g.cfg.Player.MuzzleY,
			g.cfg.Bullet,
		))
		g.shotsFired++
	}

	g.player.Move(in, playW)

	if g.spawner.Advance() {
		g.enemies = append(g.enemies, NewEnemy(g.player.X, g.player.Y, g.cfg.Enemy))
	}

	// Bullets
	liveBullets := g.bullets[:0]
	for _, b := range g.bullets {
		b.Advance()
		if !b.Expired() {
			liveBullets = append(liveBullets, b)
		}
	}
	g.bullets = liveBullets

	// Enemies: reaching the player ends the session before anything else
	// can remove that enemy
	playerRect := g.player.Rect()
	for i := range g.enemies {
		g.enemies[i].Advance()
		if g.enemies[i].Rect.Intersects(playerRect) {
			g.terminate(core.EndEnemyCollision)
			return
		}
	}
	liveEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Expired(playW) {
			liveEnemies = append(liveEnemies, e)
		}
	}
	g.enemies = liveEnemies

	var hits int
	g.bullets, g.enemies, hits = resolveBulletHits(g.bullets, g.enemies)
	g.score += hits * g.cfg.Scoring.PerKill
	g.enemiesDown += hits
}

func (g *Game) terminate(reason core.EndReason) {
	g.phase = core.PhaseTerminated
	g.endReason = reason
}

// Render draws the current screen.
func (g *Game) Render(dst core.Canvas) {
	if g.phase == core.PhaseWelcome {
		g.welcome.Render(dst)
		return
	}

	dst.Clear(core.ColorBackground)

	g.character.Draw(dst, g.player.X, g.player.Y)

	for _, b := range g.bullets {
		dst.FillRect(b.Rect, core.ColorBullet)
	}
	for _, e := range g.enemies {
		drawEnemy(dst, e)
	}

	dst.Text(10, 10, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
}

// drawEnemy renders an enemy as a body ellipse with an eye and a gun
// pointing at the player.
func drawEnemy(dst core.Canvas, e Enemy) {
	dst.FillEllipse(e.Rect, e.Color)
	cx, cy := e.Rect.Center()
	dst.FillCircle(cx, cy, enemyEyeRadius, core.ColorBlack)
	dst.Line(cx, cy, cx+enemyGunLength, cy, core.ColorBlack)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.score,
		Phase:       g.phase,
		EndReason:   g.endReason,
		PlayFrames:  g.playFrames,
		ShotsFired:  g.shotsFired,
		EnemiesDown: g.enemiesDown,
	}
}

// Bullets returns the live bullets in insertion order.
func (g *Game) Bullets() []Bullet {
	return g.bullets
}

// Enemies returns the live enemies in insertion order.
func (g *Game) Enemies() []Enemy {
	return g.enemies
}

// Player returns the player.
func (g *Game) Player() Player {
	return g.player
}
