package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/balkashynov/colorspace/internal/palette"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow config changes and update the workspace colours",
	Long: `Watch the colorspace config file. Turning 'enabled' on colours the workspace,
turning it off removes the colours. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, app *appContext, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Close()

		w := &settingsWatcher{
			path:     app.source.Path(),
			settings: app.source,
			manager:  app.manager,
			ws:       app.workspace,
			out:      cmd.OutOrStdout(),
		}

		// The directory is watched because saves replace the file by rename
		dir := filepath.Dir(w.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}

		fmt.Fprintf(w.out, "Watching %s (Ctrl+C to stop)\n", w.path)
		return w.run(ctx, watcher.Events, watcher.Errors)
	}),
}

// settingsWatcher feeds config file events to the palette manager
type settingsWatcher struct {
	path     string
	settings palette.SettingsSource
	manager  *palette.Manager
	ws       palette.Workspace
	out      io.Writer
}

func (w *settingsWatcher) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	prev, err := w.settings.Settings()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			next, err := w.settings.Settings()
			if err != nil {
				// Editors often write in several steps; wait for the next event
				log.Printf("watch: reload %s: %v", w.path, err)
				continue
			}
			out, err := w.manager.SettingsChanged(ctx, w.ws, prev, next)
			prev = next
			if err != nil {
				fmt.Fprintf(w.out, "Error: %v\n", err)
				continue
			}
			w.report(out, next)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func (w *settingsWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *settingsWatcher) report(out palette.Outcome, next palette.Settings) {
	switch {
	case out.Applied:
		printApplied(w.out, w.ws, out.Palette)
	case out.Skipped == palette.SkipDisabled && !next.Enabled:
		fmt.Fprintf(w.out, "colorspace disabled, colours removed from %s\n", w.ws.Name)
	case out.Skipped != palette.SkipNone:
		printOutcome(w.out, w.ws, out)
	}
}
