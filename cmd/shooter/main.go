// shooter is a side-view arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter play             - Play in the terminal (--window for a desktop window)
//	shooter serve            - Start SSH server for remote play
//	shooter replays          - Browse recorded sessions
//	shooter replay <id>      - Watch or verify a recording
//	shooter config           - Print the effective tunables
//
// Global flags:
//
//	--config <path>     - Tunables file (YAML or TOML)
//	--db <path>         - Replay database (default: ~/.shooter/replays.db)
//	--fps <rate>        - Override the play frame rate (0 = from config)
//	--log-file <path>   - Log destination (default: ~/.shooter/shooter.log)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

// logger is set up by the root command before any subcommand runs.
// The terminal belongs to the game, so it writes to a file.
var (
	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "2D Shooter - hold the line against the walkers",
	Long: `2D Shooter is a side-view arcade shooter. Enemies spawn behind you
and walk right; shoot them before one reaches you.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  replays  - Browse recorded sessions
  replay   - Watch or verify a recording
  config   - Print the effective tunables

Examples:
  shooter play
  shooter play --window --record
  shooter serve --ssh :2222
  shooter replays
  shooter replay 3 --headless
  shooter config --format toml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tunables file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Play frame rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.shooter/shooter.log", "Log file path (- for stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging opens the log destination named by the global flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	if flagLogFile != "-" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		logSink = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig loads the tunables named by --config.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "play_fps", cfg.Timing.PlayFPS)
	return cfg, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
