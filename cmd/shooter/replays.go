package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `List recorded sessions, newest first. The interactive browser plays
the selected recording in the terminal; --plain prints the list instead.

Examples:
  shooter replays
  shooter replays --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the list instead of opening the browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to print with --plain")
}

func runReplays(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagPlain {
		replays, err := store.RecentReplays(flagLimit)
		if err != nil {
			return err
		}
		printReplays(cmd.OutOrStdout(), replays)
		return nil
	}

	runtime := runtimeConfig()
	id, err := tui.RunReplayBrowser(store, runtime.ScreenW, runtime.ScreenH)
	if err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	if id == 0 {
		return nil
	}

	r, err := store.Replay(id)
	if err != nil {
		return err
	}
	return watchReplay(cmd, r, false)
}

// printReplays writes a plain table of replays.
func printReplays(w io.Writer, replays []storage.Replay) {
	if len(replays) == 0 {
		fmt.Fprintln(w, "No replays recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'shooter play --record' to save one!")
		return
	}

	fmt.Fprintf(w, "  %-6s  %-8s  %-8s  %-10s  %s\n", "ID", "Score", "Frames", "Ending", "Date")
	fmt.Fprintf(w, "  %-6s  %-8s  %-8s  %-10s  %s\n", "--", "-----", "------", "------", "----")
	for _, r := range replays {
		fmt.Fprintf(w, "  %-6d  %-8d  %-8d  %-10s  %s\n",
			r.ID, r.Score, r.Frames, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
