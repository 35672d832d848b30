package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/manicmap/mapdat-go/cli/internal/ui"
	"github.com/manicmap/mapdat-go/cli/internal/watch"
	"github.com/manicmap/mapdat-go/mapdat"
)

var watchCmd = &cobra.Command{
	Use:   "watch [map-path]",
	Short: "Revalidate a map file on every change",
	Long: `Watch a map file and rerun validation whenever it is saved.
Diagnostics are reprinted after each change; press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var watchMapPath string

func init() {
	watchCmd.Flags().StringVarP(&watchMapPath, "map", "m", "", "Path to map file")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	mapPath := getMapPath(watchMapPath, args)

	if _, err := os.Stat(mapPath); err != nil {
		return fmt.Errorf("map file not found: %s", mapPath)
	}

	ui.PrintHeader("mapdat", "Watch Map")
	ui.PrintInfo("Watching %s (Ctrl+C to stop)", mapPath)
	fmt.Println()

	debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
	watcher, err := watch.NewWatcher(mapPath, debounce, func() error {
		revalidate(mapPath)
		return nil
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println()
	ui.PrintInfo("Stopped watching.")
	return nil
}

// revalidate runs one validation pass and prints the result. Errors are
// printed, never returned: a broken intermediate save must not end the
// watch.
func revalidate(mapPath string) {
	content, err := os.ReadFile(mapPath)
	if err != nil {
		ui.PrintError("read failed: %v", err)
		return
	}

	_, diags := mapdat.ValidateMap(mapdat.NewSourceFile(mapPath, string(content)))

	timestamp := time.Now().Format("15:04:05")
	switch {
	case diags.HasErrors():
		ui.PrintError("[%s] %d problem(s)", timestamp, diags.Len())
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(mapPath, string(content)))
	case len(diags.Warnings()) > 0:
		ui.PrintWarning("[%s] valid, %d warning(s)", timestamp, len(diags.Warnings()))
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.WarningsToPrettyString(mapPath, string(content)))
	default:
		ui.PrintSuccess("[%s] map is valid", timestamp)
	}
}
