package config

import (
	"errors"

	"github.com/balkashynov/colorspace/internal/palette"
)

// Source re-reads the config file on every call so edits made while watching are seen.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path is the file Source reads and writes.
func (s *Source) Path() string {
	return s.path
}

// Config loads the full configuration; a missing file is not an error.
func (s *Source) Config() (*Config, error) {
	cfg, err := Load(s.path)
	if errors.Is(err, ErrNoConfigFile) {
		return cfg, nil
	}
	return cfg, err
}

func (s *Source) Settings() (palette.Settings, error) {
	cfg, err := s.Config()
	if err != nil {
		return palette.Settings{}, err
	}
	return cfg.Settings(), nil
}

// SetEnabled flips the global switch and saves, keeping every other setting.
func (s *Source) SetEnabled(enabled bool) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	cfg.Enabled = enabled
	return cfg.Save(s.path)
}

// Ignore adds name to the ignore list and saves. Adding a listed name is a no-op.
func (s *Source) Ignore(name string) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	cfg.IgnoreList = append(cfg.IgnoreList, name)
	return cfg.Save(s.path)
}

// Unignore removes name from the ignore list and saves.
func (s *Source) Unignore(name string) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	kept := cfg.IgnoreList[:0]
	for _, ignored := range cfg.IgnoreList {
		if ignored != name {
			kept = append(kept, ignored)
		}
	}
	cfg.IgnoreList = kept
	return cfg.Save(s.path)
}
