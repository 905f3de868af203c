package palette

import (
	"context"
	"maps"
	"sync"

	"github.com/balkashynov/colorspace/internal/color"
)

// fakeConfigStore keeps one mapping per scope and key, copying on the way in
// and out the way a file-backed store would.
type fakeConfigStore struct {
	mu      sync.Mutex
	data    map[Scope]map[string]map[string]any
	gets    int
	updates int

	GetErr    error
	UpdateErr error
}

func newFakeConfigStore(initial map[string]any) *fakeConfigStore {
	s := &fakeConfigStore{data: map[Scope]map[string]map[string]any{}}
	if initial != nil {
		s.data[ScopeWorkspace] = map[string]map[string]any{ColorCustomizationsKey: maps.Clone(initial)}
	}
	return s
}

func (s *fakeConfigStore) Get(ctx context.Context, scope Scope, key string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return maps.Clone(s.data[scope][key]), nil
}

func (s *fakeConfigStore) Update(ctx context.Context, scope Scope, key string, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.updates++
	if s.data[scope] == nil {
		s.data[scope] = map[string]map[string]any{}
	}
	s.data[scope][key] = maps.Clone(values)
	return nil
}

func (s *fakeConfigStore) snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.data[ScopeWorkspace][ColorCustomizationsKey])
}

func (s *fakeConfigStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

type fakeFlagStore struct {
	mu     sync.Mutex
	flags  map[string]bool
	reads  int
	writes int

	ReadErr  error
	WriteErr error
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{flags: map[string]bool{}}
}

func (f *fakeFlagStore) ManuallyCleared(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.ReadErr != nil {
		return false, f.ReadErr
	}
	return f.flags[key], nil
}

func (f *fakeFlagStore) SetManuallyCleared(ctx context.Context, key string, cleared bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.writes++
	f.flags[key] = cleared
	return nil
}

func (f *fakeFlagStore) get(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flags[key]
}

type fakeTheme struct {
	polarity color.Polarity
}

func (t fakeTheme) Polarity() color.Polarity { return t.polarity }

type fakeSettings struct {
	mu       sync.Mutex
	settings Settings
	SetErr   error
}

func (s *fakeSettings) Settings() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *fakeSettings) SetEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.settings.Enabled = enabled
	return nil
}

type fixture struct {
	config   *fakeConfigStore
	flags    *fakeFlagStore
	settings *fakeSettings
	manager  *Manager
}

func newFixture(initial map[string]any, settings Settings, polarity color.Polarity) *fixture {
	f := &fixture{
		config:   newFakeConfigStore(initial),
		flags:    newFakeFlagStore(),
		settings: &fakeSettings{settings: settings},
	}
	f.manager = NewManager(f.config, f.flags, fakeTheme{polarity: polarity}, f.settings)
	return f
}
