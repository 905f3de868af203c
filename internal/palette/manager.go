// Package palette decides when a workspace gets a colour: it gates auto-apply
// on the user's settings and the override flag, and merges or strips the role
// palette in the editor's configuration without touching unrelated keys.
package palette

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"sync"

	"github.com/balkashynov/colorspace/internal/color"
)

// ErrConfigurationWriteFailed wraps any failure to persist colours or the override flag.
var ErrConfigurationWriteFailed = errors.New("configuration write failed")

// SkipReason explains why AutoApply did nothing.
type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipDisabled        SkipReason = "colorspace is disabled"
	SkipNoWorkspace     SkipReason = "no workspace open"
	SkipIgnored         SkipReason = "workspace is on the ignore list"
	SkipManuallyCleared SkipReason = "colour was cleared manually"
	SkipAlreadyColored  SkipReason = "workspace already has colours"
)

// Outcome reports what AutoApply did.
type Outcome struct {
	Applied bool
	Skipped SkipReason
	Palette color.RolePalette
}

// Manager applies, preserves and clears role palettes. All read-merge-write
// sequences are serialised by the manager itself.
type Manager struct {
	mu       sync.Mutex
	config   ConfigStore
	flags    FlagStore
	theme    ThemeQuery
	settings SettingsSource
	random   func() string
}

// Option customises a Manager.
type Option func(*Manager)

// WithRandomSource makes RandomColor draw from src instead of the global generator.
func WithRandomSource(src color.Source) Option {
	return func(m *Manager) {
		m.random = func() string { return color.RandomFrom(src, color.Catalog) }
	}
}

// NewManager wires a Manager to its collaborators.
func NewManager(config ConfigStore, flags FlagStore, theme ThemeQuery, settings SettingsSource, opts ...Option) *Manager {
	m := &Manager{
		config:   config,
		flags:    flags,
		theme:    theme,
		settings: settings,
		random:   color.RandomColor,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AutoApply colours ws from its name when colorspace is enabled, ws is not
// ignored, the user has not cleared it, and none of the palette backgrounds is
// already set.
func (m *Manager) AutoApply(ctx context.Context, ws Workspace) (Outcome, error) {
	settings, err := m.settings.Settings()
	if err != nil {
		return Outcome{}, fmt.Errorf("load settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autoApply(ctx, ws, settings)
}

func (m *Manager) autoApply(ctx context.Context, ws Workspace, settings Settings) (Outcome, error) {
	switch {
	case !settings.Enabled:
		return skipped(ws, SkipDisabled), nil
	case ws.Name == "":
		return skipped(ws, SkipNoWorkspace), nil
	case settings.Ignores(ws.Name):
		return skipped(ws, SkipIgnored), nil
	}

	cleared, err := m.flags.ManuallyCleared(ctx, ws.Key)
	if err != nil {
		return Outcome{}, fmt.Errorf("read override flag: %w", err)
	}
	if cleared {
		return skipped(ws, SkipManuallyCleared), nil
	}

	current, err := m.readCustomizations(ctx)
	if err != nil {
		return Outcome{}, err
	}
	for _, key := range color.BackgroundKeys {
		if _, ok := current[key]; ok {
			return skipped(ws, SkipAlreadyColored), nil
		}
	}

	base := color.DeterministicColor(ws.Name, m.theme.Polarity())
	p, err := color.DerivePalette(base)
	if err != nil {
		return Outcome{}, err
	}
	if err := m.writePalette(ctx, ws, current, p, settings.Refinements); err != nil {
		return Outcome{}, err
	}

	log.Printf("palette: auto-applied %s to %q", base, ws.Name)
	return Outcome{Applied: true, Palette: p}, nil
}

func skipped(ws Workspace, reason SkipReason) Outcome {
	log.Printf("palette: auto-apply skipped for %q: %s", ws.Name, reason)
	return Outcome{Skipped: reason}
}

// ApplyColor validates hex, merges its role palette into the workspace
// configuration and resets the override flag. Invalid input writes nothing.
func (m *Manager) ApplyColor(ctx context.Context, ws Workspace, hex string) (color.RolePalette, error) {
	p, err := color.DerivePalette(hex)
	if err != nil {
		return color.RolePalette{}, err
	}
	settings, err := m.settings.Settings()
	if err != nil {
		return color.RolePalette{}, fmt.Errorf("load settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.readCustomizations(ctx)
	if err != nil {
		return color.RolePalette{}, err
	}
	if err := m.writePalette(ctx, ws, current, p, settings.Refinements); err != nil {
		return color.RolePalette{}, err
	}

	log.Printf("palette: applied %s to %q", p.Base, ws.Name)
	return p, nil
}

// ClearColor removes every palette key from the workspace configuration and
// marks the workspace as manually cleared so AutoApply leaves it alone.
func (m *Manager) ClearColor(ctx context.Context, ws Workspace) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.removePalette(ctx); err != nil {
		return err
	}
	if err := m.flags.SetManuallyCleared(ctx, ws.Key, true); err != nil {
		return fmt.Errorf("%w: set override flag: %w", ErrConfigurationWriteFailed, err)
	}

	log.Printf("palette: cleared %q", ws.Name)
	return nil
}

// RandomColor returns a random base colour; feed it to ApplyColor.
func (m *Manager) RandomColor() string {
	return m.random()
}

// Enable turns colorspace on globally and auto-applies ws.
func (m *Manager) Enable(ctx context.Context, ws Workspace) (Outcome, error) {
	if err := m.settings.SetEnabled(true); err != nil {
		return Outcome{}, fmt.Errorf("%w: enable: %w", ErrConfigurationWriteFailed, err)
	}
	return m.AutoApply(ctx, ws)
}

// Disable strips the palette from ws and then turns colorspace off globally, so
// a failed palette write leaves the switch on and the command can be retried.
// The override flag is left alone so enabling again restores the auto colour.
func (m *Manager) Disable(ctx context.Context, ws Workspace) error {
	m.mu.Lock()
	err := m.removePalette(ctx)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	if err := m.settings.SetEnabled(false); err != nil {
		return fmt.Errorf("%w: disable: %w", ErrConfigurationWriteFailed, err)
	}
	log.Printf("palette: disabled, removed palette from %q", ws.Name)
	return nil
}

// SettingsChanged reacts to an edit of the user's settings: flipping enabled on
// auto-applies ws, flipping it off strips the palette. Other edits are ignored.
func (m *Manager) SettingsChanged(ctx context.Context, ws Workspace, prev, next Settings) (Outcome, error) {
	if prev.Enabled == next.Enabled {
		return Outcome{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if next.Enabled {
		return m.autoApply(ctx, ws, next)
	}
	if err := m.removePalette(ctx); err != nil {
		return Outcome{}, err
	}
	return Outcome{Skipped: SkipDisabled}, nil
}

func (m *Manager) readCustomizations(ctx context.Context) (map[string]any, error) {
	current, err := m.config.Get(ctx, ScopeWorkspace, ColorCustomizationsKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ColorCustomizationsKey, err)
	}
	// Never mutate what the store handed back.
	merged := make(map[string]any, len(current)+len(color.PaletteKeys))
	maps.Copy(merged, current)
	return merged, nil
}

// writePalette merges p into current, drops refinement keys that are no longer
// wanted, persists, and resets the override flag.
func (m *Manager) writePalette(ctx context.Context, ws Workspace, current map[string]any, p color.RolePalette, refinements bool) error {
	for _, key := range color.PaletteKeys {
		delete(current, key)
	}
	for key, value := range p.Entries(refinements) {
		current[key] = value
	}

	if err := m.config.Update(ctx, ScopeWorkspace, ColorCustomizationsKey, current); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigurationWriteFailed, err)
	}
	if err := m.flags.SetManuallyCleared(ctx, ws.Key, false); err != nil {
		return fmt.Errorf("%w: reset override flag: %w", ErrConfigurationWriteFailed, err)
	}
	return nil
}

func (m *Manager) removePalette(ctx context.Context) error {
	current, err := m.readCustomizations(ctx)
	if err != nil {
		return err
	}
	for _, key := range color.PaletteKeys {
		delete(current, key)
	}
	if err := m.config.Update(ctx, ScopeWorkspace, ColorCustomizationsKey, current); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigurationWriteFailed, err)
	}
	return nil
}
