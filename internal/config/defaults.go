package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in tunables.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		PlayArea: PlayAreaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:  660,
			StartY:  400,
			Width:   40,
			Height:  60,
			Speed:   5,
			MuzzleX: 15,
			MuzzleY: 10,
		},
		Bullet: BulletConfig{
			OffsetX: 15,
			OffsetY: 0,
			Width:   10,
			Height:  5,
			Speed:   -10,
		},
		Enemy: EnemyConfig{
			Width:       40,
			Height:      60,
			Speed:       3,
			SpawnOffset: 800,
		},
		Spawn: SpawnConfig{
			Interval: 60,
		},
		Scoring: ScoringConfig{
			PerKill: 5,
		},
		Timing: TimingConfig{
			WelcomeFPS: 30,
			PlayFPS:    60,
		},
	}
}
