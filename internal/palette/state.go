package palette

import (
	"context"
	"fmt"

	"github.com/balkashynov/colorspace/internal/color"
)

// State is where a workspace sits in the colour lifecycle.
type State int

const (
	StateDisabled State = iota
	StateAuto
	StateManuallySet
	StateManuallyCleared
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateAuto:
		return "auto"
	case StateManuallySet:
		return "manually set"
	case StateManuallyCleared:
		return "manually cleared"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is a read-only snapshot of a workspace's colour state.
type Status struct {
	Workspace Workspace
	State     State
	Ignored   bool
	// AutoColor is the base colour AutoApply would pick right now.
	AutoColor string
	// Colors holds the palette keys currently present in the workspace configuration.
	Colors map[string]string
}

// Status reports the state of ws. A workspace whose stored title background
// differs from the auto colour's is considered manually set.
func (m *Manager) Status(ctx context.Context, ws Workspace) (Status, error) {
	settings, err := m.settings.Settings()
	if err != nil {
		return Status{}, fmt.Errorf("load settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cleared, err := m.flags.ManuallyCleared(ctx, ws.Key)
	if err != nil {
		return Status{}, fmt.Errorf("read override flag: %w", err)
	}
	current, err := m.readCustomizations(ctx)
	if err != nil {
		return Status{}, err
	}

	st := Status{
		Workspace: ws,
		Ignored:   settings.Ignores(ws.Name),
		Colors:    map[string]string{},
	}
	for _, key := range color.PaletteKeys {
		if v, ok := current[key].(string); ok {
			st.Colors[key] = v
		}
	}
	if ws.Name != "" {
		st.AutoColor = color.DeterministicColor(ws.Name, m.theme.Polarity())
	}

	switch {
	case !settings.Enabled:
		st.State = StateDisabled
	case cleared:
		st.State = StateManuallyCleared
	case st.Colors[color.KeyTitleBackground] != "" && !m.isAutoTitle(st.AutoColor, st.Colors[color.KeyTitleBackground]):
		st.State = StateManuallySet
	default:
		st.State = StateAuto
	}
	return st, nil
}

func (m *Manager) isAutoTitle(autoColor, title string) bool {
	if autoColor == "" {
		return false
	}
	p, err := color.DerivePalette(autoColor)
	if err != nil {
		return false
	}
	stored, err := color.Canonicalize(title)
	if err != nil {
		return false
	}
	return p.Title.Background == stored
}
