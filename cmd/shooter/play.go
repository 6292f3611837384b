package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagWindow bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. The welcome screen waits for a click (Enter in the
terminal); play runs until an enemy reaches you or you quit.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  Enter / click    - Start
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Screenshot (terminal only)

Examples:
  shooter play
  shooter play --window
  shooter play --record
  shooter play --config ./my-shooter.toml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session to the replay database")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	game := shooter.New(cfg)
	runtime := runtimeConfig()

	var saver shooter.SessionSaver
	if flagRecord {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			// Continue without recording - the game still works
			logger.Warn("could not open replay database", "error", openErr)
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: not recording: %v\n", openErr)
		} else {
			defer store.Close()
			saver = store
		}
	}

	logger.Info("session starting", "window", flagWindow, "record", saver != nil)

	var state core.GameState
	var replayID int64
	if flagWindow {
		res, runErr := window.Run(game, runtime, window.Options{Saver: saver, Logger: logger})
		if runErr != nil {
			return fmt.Errorf("window: %w", runErr)
		}
		state, replayID = res.State, res.ReplayID
	} else {
		res, runErr := tui.Run(game, runtime, tui.Options{Saver: saver, Logger: logger})
		if runErr != nil {
			return fmt.Errorf("terminal: %w", runErr)
		}
		state, replayID = res.State, res.ReplayID
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.Summary(state))
	if replayID != 0 {
		fmt.Fprintf(out, "Recorded as replay %d (shooter replay %d)\n", replayID, replayID)
	}
	return nil
}
