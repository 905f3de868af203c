package palette

import (
	"context"

	"github.com/balkashynov/colorspace/internal/color"
)

// ColorCustomizationsKey is the editor setting that holds workbench colour overrides.
const ColorCustomizationsKey = "workbench.colorCustomizations"

// Scope selects which settings layer a configuration read or write targets.
type Scope int

const (
	// ScopeWorkspace is the per-project settings file. Palettes are only ever written here.
	ScopeWorkspace Scope = iota
	// ScopeUser is the user's global settings file.
	ScopeUser
)

func (s Scope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "workspace"
}

// ConfigStore reads and writes one mapping-valued editor setting. Implementations
// must return a mapping the caller may mutate.
type ConfigStore interface {
	Get(ctx context.Context, scope Scope, key string) (map[string]any, error)
	Update(ctx context.Context, scope Scope, key string, values map[string]any) error
}

// FlagStore keeps the per-workspace "manually cleared" flag. Unknown workspaces
// report false.
type FlagStore interface {
	ManuallyCleared(ctx context.Context, workspaceKey string) (bool, error)
	SetManuallyCleared(ctx context.Context, workspaceKey string, cleared bool) error
}

// ThemeQuery reports whether the active UI theme is light or dark.
type ThemeQuery interface {
	Polarity() color.Polarity
}

// Settings are the user's colorspace preferences.
type Settings struct {
	Enabled     bool
	IgnoreList  []string
	Refinements bool
}

// Ignores reports whether name is on the ignore list. Matching is exact.
func (s Settings) Ignores(name string) bool {
	for _, ignored := range s.IgnoreList {
		if ignored == name {
			return true
		}
	}
	return false
}

// SettingsSource loads the current settings and persists the global enabled switch.
type SettingsSource interface {
	Settings() (Settings, error)
	SetEnabled(enabled bool) error
}

// Workspace identifies an open project. Name is the hash input; Key is the
// stable identity used for the override flag.
type Workspace struct {
	Name string
	Key  string
}
