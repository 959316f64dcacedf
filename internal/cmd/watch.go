package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mossline/sitenav/internal/menu"
	"github.com/mossline/sitenav/internal/output"
	"github.com/mossline/sitenav/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the menu when content changes",
	Long: `Watch the content directory and rebuild the menu tree whenever
entry files change, reporting node and root counts per rebuild.

Runs until interrupted.

Examples:
  sitenav watch
  sitenav watch --debounce 1s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := stdoutFromContext(ctx)
		report := func(event string) {
			roots, err := buildMenu()
			if err != nil {
				fmt.Fprintf(stderrFromContext(ctx), "rebuild failed: %v\n", err)
				return
			}
			if output.QuietFromContext(ctx) {
				return
			}
			fmt.Fprintf(out, "%s: %d node(s), %d root(s)\n", event, menu.Count(roots), len(roots))
		}

		report("initial build")
		err := watch.Watch(ctx, store.Dir(), watchDebounce, func(paths []string) {
			if debug {
				for _, p := range paths {
					fmt.Fprintf(stderrFromContext(ctx), "changed: %s\n", p)
				}
			}
			report(fmt.Sprintf("rebuilt (%d change(s))", len(paths)))
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Settle time before a change batch triggers a rebuild")
	rootCmd.AddCommand(watchCmd)
}
