package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ErrNoConfigFile) {
		t.Fatalf("expected ErrNoConfigFile, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
ignore_list = ["Scratch", " scratch ", "", "Scratch"]
refinements = true
theme = "LIGHT"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled {
		t.Error("enabled should default to true when absent")
	}
	if !cfg.Refinements {
		t.Error("expected refinements on")
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected theme light, got %q", cfg.Theme)
	}
	if cfg.Language != "en" {
		t.Errorf("expected language en, got %q", cfg.Language)
	}
	want := []string{"Scratch", "scratch"}
	if !reflect.DeepEqual(cfg.IgnoreList, want) {
		t.Errorf("expected ignore list %v, got %v", want, cfg.IgnoreList)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
enabled = false
theme = "sepia"
language = "fr"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enabled {
		t.Error("expected enabled=false")
	}
	if cfg.Theme != ThemeAuto || cfg.Language != "en" {
		t.Errorf("expected fallbacks, got theme=%q language=%q", cfg.Theme, cfg.Language)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "enabled = [")
	cfg, err := Load(path)
	if err == nil || errors.Is(err, ErrNoConfigFile) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Errorf("expected defaults on parse error, got %+v", cfg)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Defaults()
	cfg.Enabled = false
	cfg.IgnoreList = []string{"Scratch"}
	cfg.Language = "zh"
	cfg.Database = "/tmp/cs.db"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("expected %+v, got %+v", cfg, got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}

func TestPath_SearchOrder(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	if got := Path("/explicit.toml"); got != "/explicit.toml" {
		t.Errorf("explicit path ignored: %s", got)
	}

	preferred := filepath.Join(xdg, "colorspace", "config.toml")
	if got := Path(""); got != preferred {
		t.Errorf("expected %s, got %s", preferred, got)
	}

	homeConfig := filepath.Join(home, ".config", "colorspace", "config.toml")
	if err := os.MkdirAll(filepath.Dir(homeConfig), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(homeConfig, []byte("enabled = false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Path(""); got != homeConfig {
		t.Errorf("expected existing %s, got %s", homeConfig, got)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enabled {
		t.Error("expected the discovered file to be loaded")
	}
}

func TestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := NewSource(path)

	settings, err := src.Settings()
	if err != nil {
		t.Fatalf("Settings on missing file: %v", err)
	}
	if !settings.Enabled {
		t.Error("expected enabled by default")
	}

	if err := src.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}
	if err := src.Ignore("Scratch"); err != nil {
		t.Fatalf("Ignore: %v", err)
	}
	if err := src.Ignore("Scratch"); err != nil {
		t.Fatalf("Ignore again: %v", err)
	}
	settings, err = src.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.Enabled {
		t.Error("expected disabled after SetEnabled(false)")
	}
	if !reflect.DeepEqual(settings.IgnoreList, []string{"Scratch"}) {
		t.Errorf("unexpected ignore list %v", settings.IgnoreList)
	}

	if err := src.Unignore("Scratch"); err != nil {
		t.Fatalf("Unignore: %v", err)
	}
	settings, _ = src.Settings()
	if settings.Ignores("Scratch") {
		t.Error("Scratch still ignored")
	}
}
