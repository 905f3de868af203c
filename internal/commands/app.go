package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/config"
	"github.com/balkashynov/colorspace/internal/db"
	"github.com/balkashynov/colorspace/internal/palette"
	"github.com/balkashynov/colorspace/internal/settings"
	"github.com/balkashynov/colorspace/internal/tui"
)

// appContext owns everything a command needs and releases it in Close
type appContext struct {
	source    *config.Source
	cfg       *config.Config
	flags     *db.FlagStore
	store     *settings.FileStore
	theme     tui.TerminalTheme
	manager   *palette.Manager
	workspace palette.Workspace
	logFile   io.Closer
}

func newAppContext(ctx context.Context) (*appContext, error) {
	app := &appContext{}
	ok := false
	defer func() {
		if !ok {
			app.Close()
		}
	}()

	if err := app.setupLogging(); err != nil {
		return nil, err
	}

	app.source = config.NewSource(config.Path(configPath))
	cfg, err := app.source.Config()
	if err != nil {
		return nil, err
	}
	app.cfg = cfg
	log.Printf("config: loaded %s", app.source.Path())

	if err := db.Initialize(cfg.Database); err != nil {
		return nil, err
	}
	app.flags = db.NewFlagStore(nil)

	ws, err := resolveWorkspace(workspaceDir)
	if err != nil {
		return nil, err
	}
	app.workspace = ws
	if ws.Name != "" {
		if err := app.flags.RecordName(ctx, ws.Key, ws.Name); err != nil {
			log.Printf("db: %v", err)
		}
	}

	app.store = settings.NewFileStore(ws.Key, cfg.UserSettings)
	app.theme = tui.NewTerminalTheme(cfg.Theme)
	app.manager = palette.NewManager(app.store, app.flags, app.theme, app.source)

	ok = true
	return app, nil
}

// setupLogging silences the standard logger unless --debug is set
func (a *appContext) setupLogging() error {
	if !debugLog {
		log.SetOutput(io.Discard)
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(homeDir, ".colorspace")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create colorspace directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "colorspace")
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	a.logFile = f
	return nil
}

// Close releases the database and the debug log
func (a *appContext) Close() error {
	var errs []error
	if err := db.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
		a.logFile = nil
	}
	return errors.Join(errs...)
}

// language is the preset display language from config
func (a *appContext) language() color.Language {
	return color.Language(a.cfg.Language)
}

// resolveWorkspace turns dir (default cwd) into a workspace identity: the base
// name feeds the colour hash, the absolute path keys the override flag.
func resolveWorkspace(dir string) (palette.Workspace, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return palette.Workspace{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return palette.Workspace{}, fmt.Errorf("invalid workspace %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return palette.Workspace{}, fmt.Errorf("workspace %s: %w", abs, err)
	}
	if !info.IsDir() {
		return palette.Workspace{}, fmt.Errorf("workspace %s is not a directory", abs)
	}

	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." {
		name = ""
	}
	return palette.Workspace{Name: name, Key: abs}, nil
}

// withApp wraps a command function to build the app context first and tear it down after
func withApp(fn func(cmd *cobra.Command, app *appContext, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(cmd, app, args)
	}
}
