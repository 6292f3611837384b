package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// errReplayDiverged is returned when a re-simulated recording does not
// reach the recorded final state.
var errReplayDiverged = errors.New("replay diverged")

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch or verify a recording",
	Long: `Play back a recorded session, or re-simulate it without rendering.

A recording stores only the inputs, so it must be replayed with the same
tunables it was recorded with. --headless checks the final state against
the recorded hash and exits non-zero if it differs.

Examples:
  shooter replay 3
  shooter replay 3 --window
  shooter replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Re-simulate without rendering and verify the result")
	replayCmd.Flags().BoolVar(&flagWindow, "window", false, "Watch in a desktop window instead of the terminal")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Replay(id)
	if err != nil {
		return err
	}

	if flagHeadless {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return verifyReplay(cmd, cfg, r)
	}
	return watchReplay(cmd, r, flagWindow)
}

// verifyReplay re-simulates a recording and compares it with the stored outcome.
func verifyReplay(cmd *cobra.Command, cfg config.ShooterConfig, r *storage.Replay) error {
	g := shooter.Simulate(cfg, core.DefaultConfig(), r.Inputs)
	state := g.State()
	hash := g.Snapshot().Hash()

	logger.Info("replay verified", "id", r.ID, "hash", fmt.Sprintf("%016x", hash), "match", hash == r.Hash)

	if hash != r.Hash || state.Score != r.Score || state.EndReason.String() != r.EndReason {
		return fmt.Errorf("%w: replay %d ended with score %d (%s), recorded %d (%s)",
			errReplayDiverged, r.ID, state.Score, state.EndReason, r.Score, r.EndReason)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Replay %d OK: %s after %d frames\n", r.ID, tui.Summary(state), state.PlayFrames)
	return nil
}

// watchReplay plays a recording back at the rate it was recorded at.
func watchReplay(cmd *cobra.Command, r *storage.Replay, inWindow bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runtime := runtimeConfig()
	if runtime.TickRate == 0 {
		runtime.TickRate = r.PlayFPS
	}
	game := shooter.New(cfg)

	var state core.GameState
	if inWindow {
		res, runErr := window.Run(game, runtime, window.Options{Playback: r.Inputs, Logger: logger})
		if runErr != nil {
			return fmt.Errorf("window: %w", runErr)
		}
		state = res.State
	} else {
		res, runErr := tui.Run(game, runtime, tui.Options{Playback: r.Inputs, Logger: logger})
		if runErr != nil {
			return fmt.Errorf("terminal: %w", runErr)
		}
		state = res.State
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Replay %d: %s\n", r.ID, tui.Summary(state))
	return nil
}
