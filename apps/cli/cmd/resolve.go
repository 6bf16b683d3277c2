package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
	"github.com/abdul-hamid-achik/plugopts/packages/warn"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var watchFlag bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <option>",
	Short: "Resolve one option through the precedence chain",
	Long: `Resolve an option declared in the plugopts namespace and print the value
the precedence chain produces: a flag set on the command line wins, then the
settings file, then the declared default.

Examples:
  plugopts resolve artifacts-dir
  plugopts resolve artifacts-dir --settings plugopts.json
  plugopts resolve run-scoped --settings plugopts.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: resolveCommand,
}

func init() {
	resolveCmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-resolve when the settings file changes")
}

func resolveCommand(cmd *cobra.Command, args []string) error {
	key := args[0]
	printResolved(cmd, key)

	if !watchFlag {
		return nil
	}

	path := settingsPath()
	if path == "" {
		return fmt.Errorf("--watch requires --settings")
	}
	return watchAndResolve(cmd, key, path)
}

func printResolved(cmd *cobra.Command, key string) {
	val := options.Resolve(Namespace, cfg, key)
	if val == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: <unset>\n", key)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, val)
}

func watchAndResolve(cmd *cobra.Command, key, path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file so editors that replace the
	// file on save keep triggering events.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", path)

	var debounceTimer *time.Timer
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				if err := settings.Load(path); err != nil {
					warn.Warnf("reloading settings: %v", err)
					return
				}
				printResolved(cmd, key)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			warn.Warnf("watcher error: %v", err)
		}
	}
}
