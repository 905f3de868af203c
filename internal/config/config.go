// Package config loads and saves the colorspace TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/balkashynov/colorspace/internal/palette"
)

// ErrNoConfigFile is returned alongside defaults when no config file exists yet.
var ErrNoConfigFile = errors.New("no config file found; using defaults")

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Enabled      bool     `toml:"enabled"`
	IgnoreList   []string `toml:"ignore_list"`   // exact workspace names never coloured automatically
	Refinements  bool     `toml:"refinements"`   // also write activityBar.inactiveForeground and statusBar.border
	Theme        string   `toml:"theme"`         // one of: auto, dark, light
	Language     string   `toml:"language"`      // preset display language: en or zh
	Database     string   `toml:"database"`      // override flag database (default ~/.colorspace/colorspace.db)
	UserSettings string   `toml:"user_settings"` // editor user settings.json (default per OS)
}

func Defaults() *Config {
	return &Config{
		Enabled:  true,
		Theme:    ThemeAuto,
		Language: "en",
	}
}

// Load loads configuration from explicit path or discovered search path.
// Missing files yield defaults and ErrNoConfigFile; parse errors return defaults and the error.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return defaults, ErrNoConfigFile
	}

	data, err := os.ReadFile(chosen)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, ErrNoConfigFile
	}
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}

	cfg := Defaults()
	if _, err := toml.Decode(string(data), cfg); err != nil { // decode overlays onto defaults
		return defaults, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes c to path, replacing the file atomically.
func (c *Config) Save(path string) error {
	c.normalize()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns where configuration should be read from and saved to: the
// explicit path, else the first existing search path, else the preferred one.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	paths := searchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(paths) > 0 {
		return paths[0]
	}
	return "config.toml"
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "colorspace", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "colorspace", "config.toml"))
	}
	return out
}

// Settings returns the subset the palette manager gates on.
func (c *Config) Settings() palette.Settings {
	return palette.Settings{
		Enabled:     c.Enabled,
		IgnoreList:  append([]string(nil), c.IgnoreList...),
		Refinements: c.Refinements,
	}
}

// normalize validates config values after decoding.
func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !validTheme(c.Theme) {
		c.Theme = ThemeAuto
	}
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if c.Language != "en" && c.Language != "zh" {
		c.Language = "en"
	}
	c.Database = strings.TrimSpace(c.Database)
	c.UserSettings = strings.TrimSpace(c.UserSettings)
	c.IgnoreList = normalizeIgnoreList(c.IgnoreList)
}

func validTheme(t string) bool {
	switch t {
	case ThemeAuto, ThemeDark, ThemeLight:
		return true
	}
	return false
}

// normalizeIgnoreList drops blanks and duplicates, keeping first-seen order.
// Names are not case-folded; matching stays exact.
func normalizeIgnoreList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
