package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", s)
	}
}

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.{yaml,toml} ->
// ./configs/shooter.yaml -> embedded default.
// Values present in a file override the defaults; missing ones keep them.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first; errors here are the caller's problem
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatForPath(customPath))
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ShooterConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Implicit locations are best-effort: a broken file falls through
	candidates := []string{
		userConfigPath("shooter.yaml"),
		userConfigPath("shooter.toml"),
		filepath.Join("configs", "shooter.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatForPath(path)); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultShooterYAML, FormatYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data on top of the built-in defaults.
func Decode(data []byte, format Format) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return ShooterConfig{}, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ShooterConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// Encode writes the configuration in the given format.
func Encode(w io.Writer, cfg ShooterConfig, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: toml encode: %w", err)
		}
		return nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("config: yaml encode: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
}

// Validate checks the invariants the simulation relies on.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"play_area.width", c.PlayArea.Width},
		{"play_area.height", c.PlayArea.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"timing.welcome_fps", c.Timing.WelcomeFPS},
		{"timing.play_fps", c.Timing.PlayFPS},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.Player.Width > c.PlayArea.Width {
		return fmt.Errorf("%w: player.width %d exceeds play_area.width %d", ErrInvalid, c.Player.Width, c.PlayArea.Width)
	}
	if c.Spawn.Interval < 0 {
		return fmt.Errorf("%w: spawn.interval must not be negative, got %d", ErrInvalid, c.Spawn.Interval)
	}
	if c.Scoring.PerKill < 0 {
		return fmt.Errorf("%w: scoring.per_kill must not be negative, got %d", ErrInvalid, c.Scoring.PerKill)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}
