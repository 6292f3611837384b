// Package config provides YAML/TOML configuration loading for the shooter's
// tunables: play area, entity sizes and speeds, spawn cadence, scoring, and
// frame rates.
package config

// ShooterConfig contains all tunables for the shooter.
type ShooterConfig struct {
	PlayArea PlayAreaConfig `yaml:"play_area" toml:"play_area"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bullet   BulletConfig   `yaml:"bullet" toml:"bullet"`
	Enemy    EnemyConfig    `yaml:"enemy" toml:"enemy"`
	Spawn    SpawnConfig    `yaml:"spawn" toml:"spawn"`
	Scoring  ScoringConfig  `yaml:"scoring" toml:"scoring"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
}

// PlayAreaConfig defines the world size all entity coordinates live in.
type PlayAreaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player's hitbox, start position and movement.
type PlayerConfig struct {
	StartX  int `yaml:"start_x" toml:"start_x"`
	StartY  int `yaml:"start_y" toml:"start_y"`
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	Speed   int `yaml:"speed" toml:"speed"`       // Units per frame while a direction is held
	MuzzleX int `yaml:"muzzle_x" toml:"muzzle_x"` // Fire point relative to the player
	MuzzleY int `yaml:"muzzle_y" toml:"muzzle_y"`
}

// BulletConfig defines bullet geometry and motion.
type BulletConfig struct {
	OffsetX int `yaml:"offset_x" toml:"offset_x"` // Rect offset from the fire point
	OffsetY int `yaml:"offset_y" toml:"offset_y"`
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	Speed   int `yaml:"speed" toml:"speed"` // Negative = leftward
}

// EnemyConfig defines enemy geometry, motion and spawn placement.
type EnemyConfig struct {
	Width       int `yaml:"width" toml:"width"`
	Height      int `yaml:"height" toml:"height"`
	Speed       int `yaml:"speed" toml:"speed"`               // Positive = rightward
	SpawnOffset int `yaml:"spawn_offset" toml:"spawn_offset"` // Distance left of the player
}

// SpawnConfig defines enemy spawn cadence.
type SpawnConfig struct {
	// Interval is the frame count the spawn counter must exceed.
	Interval int `yaml:"interval" toml:"interval"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	PerKill int `yaml:"per_kill" toml:"per_kill"`
}

// TimingConfig defines per-screen frame rates.
type TimingConfig struct {
	WelcomeFPS int `yaml:"welcome_fps" toml:"welcome_fps"`
	PlayFPS    int `yaml:"play_fps" toml:"play_fps"`
}
