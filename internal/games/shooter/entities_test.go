package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestNewBullet(t *testing.T) {
	cfg := config.DefaultShooterConfig().Bullet
	b := NewBullet(100, 50, cfg)

	want := core.NewRect(115, 50, 10, 5)
	if b.Rect != want {
		t.Errorf("NewBullet rect = %+v, expected %+v", b.Rect, want)
	}
	if b.Speed != -10 {
		t.Errorf("NewBullet speed = %d, expected -10", b.Speed)
	}
}

func TestBulletAdvanceAndExpiry(t *testing.T) {
	cfg := config.DefaultShooterConfig().Bullet
	b := NewBullet(0, 0, cfg) // Right edge starts at 25

	rights := []int{15, 5, -5}
	for i, want := range rights {
		before := b.Rect.Right()
		b.Advance()
		if before-b.Rect.Right() != 10 {
			t.Fatalf("frame %d: right edge moved by %d, expected 10", i, before-b.Rect.Right())
		}
		if b.Rect.Right() != want {
			t.Fatalf("frame %d: right = %d, expected %d", i, b.Rect.Right(), want)
		}
		if expired := b.Expired(); expired != (want < 0) {
			t.Fatalf("frame %d: Expired() = %v with right edge %d", i, expired, want)
		}
	}
}

func TestBulletAtZeroIsNotExpired(t *testing.T) {
	b := Bullet{Rect: core.NewRect(-10, 0, 10, 5)}
	if b.Expired() {
		t.Error("a bullet whose right edge is exactly 0 is still on screen")
	}
}

func TestNewEnemySpawnsLeftOfPlayer(t *testing.T) {
	cfg := config.DefaultShooterConfig().Enemy
	e := NewEnemy(500, 400, cfg)

	want := core.NewRect(-300, 400, 40, 60)
	if e.Rect != want {
		t.Errorf("NewEnemy rect = %+v, expected %+v", e.Rect, want)
	}
	if e.Speed != 3 {
		t.Errorf("NewEnemy speed = %d, expected 3", e.Speed)
	}
	if e.Color != core.ColorEnemy {
		t.Errorf("NewEnemy color = %v, expected ColorEnemy", e.Color)
	}
}

func TestEnemyExpiry(t *testing.T) {
	tests := []struct {
		x       int
		expired bool
	}{
		{750, false},
		{800, false},
		{801, true},
		{810, true},
		{-300, false},
	}

	for _, tc := range tests {
		e := Enemy{Rect: core.NewRect(tc.x, 0, 40, 60)}
		if got := e.Expired(800); got != tc.expired {
			t.Errorf("Expired() at x=%d = %v, expected %v", tc.x, got, tc.expired)
		}
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	p := NewPlayer(cfg.Player)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 500; i++ {
		p.Move(right, cfg.PlayArea.Width)
		if p.X < 0 || p.X > cfg.PlayArea.Width-p.W {
			t.Fatalf("x = %d left [0, %d]", p.X, cfg.PlayArea.Width-p.W)
		}
	}
	if p.X != 760 {
		t.Errorf("holding right should pin x at 760, got %d", p.X)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 500; i++ {
		p.Move(left, cfg.PlayArea.Width)
	}
	if p.X != 0 {
		t.Errorf("holding left should pin x at 0, got %d", p.X)
	}
}

func TestPlayerMoveBothDirectionsCancel(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	p := NewPlayer(cfg.Player)

	both := core.NewInputFrame()
	both.Set(core.ActionLeft)
	both.Set(core.ActionRight)
	p.Move(both, cfg.PlayArea.Width)

	if p.X != cfg.Player.StartX {
		t.Errorf("left+right should cancel, x = %d", p.X)
	}
}

func TestSpawnerCadence(t *testing.T) {
	s := NewSpawner(60)

	for i := 1; i <= 60; i++ {
		if s.Advance() {
			t.Fatalf("spawned on advance %d, expected the counter to exceed 60 first", i)
		}
	}
	if s.Counter() != 60 {
		t.Fatalf("Counter() = %d after 60 advances", s.Counter())
	}

	if !s.Advance() {
		t.Fatal("expected a spawn once the counter exceeds 60")
	}
	if s.Counter() != 0 {
		t.Errorf("counter should reset to 0 after spawning, got %d", s.Counter())
	}

	// Steady state: one spawn per 61 advances
	spawns := 0
	for i := 0; i < 61*5; i++ {
		if s.Advance() {
			spawns++
		}
	}
	if spawns != 5 {
		t.Errorf("expected 5 spawns over 305 advances, got %d", spawns)
	}
}

func TestSpawnerZeroIntervalSpawnsEveryFrame(t *testing.T) {
	s := NewSpawner(0)
	for i := 0; i < 5; i++ {
		if !s.Advance() {
			t.Fatalf("advance %d: interval 0 should spawn every frame", i)
		}
	}
}
