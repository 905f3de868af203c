package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/config"
	"github.com/balkashynov/colorspace/internal/palette"
	"github.com/balkashynov/colorspace/internal/settings"
)

type testEnv struct {
	root      string
	workspace string
	config    string
}

func newTestEnv(t *testing.T, extraConfig string) *testEnv {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))

	e := &testEnv{
		root:      root,
		workspace: filepath.Join(root, "MyProject"),
		config:    filepath.Join(root, "config.toml"),
	}
	if err := os.MkdirAll(e.workspace, 0755); err != nil {
		t.Fatal(err)
	}
	body := fmt.Sprintf("theme = \"dark\"\ndatabase = %q\nuser_settings = %q\n%s\n",
		filepath.Join(root, "colorspace.db"), filepath.Join(root, "user", "settings.json"), extraConfig)
	if err := os.WriteFile(e.config, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return e
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", e.config, "--workspace", e.workspace))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("colorspace %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func (e *testEnv) settingsPath() string {
	return settings.WorkspacePath(e.workspace)
}

// customizations reads workbench.colorCustomizations back from disk
func (e *testEnv) customizations(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile(e.settingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		t.Fatalf("settings.json does not parse: %v\n%s", err, data)
	}
	var doc map[string]any
	if err := json.Unmarshal(std, &doc); err != nil {
		t.Fatal(err)
	}
	values, _ := doc[palette.ColorCustomizationsKey].(map[string]any)
	return values
}

func TestAuto_FirstOpenThenReopen(t *testing.T) {
	e := newTestEnv(t, "")

	out := e.mustRun(t, "auto")
	if !strings.Contains(out, "Applied") {
		t.Errorf("expected applied message, got %q", out)
	}

	want, err := color.DerivePalette(color.DeterministicColor("MyProject", color.Dark))
	if err != nil {
		t.Fatal(err)
	}
	got := e.customizations(t)
	if len(got) != 6 {
		t.Fatalf("expected 6 palette keys, got %v", got)
	}
	for key, value := range want.Entries(false) {
		if got[key] != value {
			t.Errorf("%s: expected %s, got %v", key, value, got[key])
		}
	}

	out = e.mustRun(t, "auto")
	if !strings.Contains(out, string(palette.SkipAlreadyColored)) {
		t.Errorf("expected reopen to be skipped, got %q", out)
	}
	if quiet := e.mustRun(t, "auto", "--quiet"); quiet != "" {
		t.Errorf("expected no output with --quiet, got %q", quiet)
	}
}

func TestApplyClearAuto(t *testing.T) {
	e := newTestEnv(t, "")
	if err := os.MkdirAll(filepath.Dir(e.settingsPath()), 0755); err != nil {
		t.Fatal(err)
	}
	existing := `{
	// project formatting
	"editor.tabSize": 4,
	"workbench.colorCustomizations": {"editorCursor.foreground": "#ffcc00"}
}`
	if err := os.WriteFile(e.settingsPath(), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	e.mustRun(t, "apply", "#123456")
	got := e.customizations(t)
	if got[color.KeyTitleBackground] != "#1b4d80" {
		t.Errorf("expected lighter title shade #1b4d80, got %v", got[color.KeyTitleBackground])
	}
	if got["editorCursor.foreground"] != "#ffcc00" {
		t.Errorf("unrelated customization lost: %v", got)
	}

	e.mustRun(t, "clear")
	got = e.customizations(t)
	for _, key := range color.PaletteKeys {
		if _, ok := got[key]; ok {
			t.Errorf("%s still present after clear", key)
		}
	}
	if len(got) != 1 || got["editorCursor.foreground"] != "#ffcc00" {
		t.Errorf("expected only the cursor colour left, got %v", got)
	}
	data, _ := os.ReadFile(e.settingsPath())
	if !strings.Contains(string(data), "// project formatting") {
		t.Errorf("comment lost:\n%s", data)
	}

	out := e.mustRun(t, "auto")
	if !strings.Contains(out, string(palette.SkipManuallyCleared)) {
		t.Errorf("expected auto to respect the clear, got %q", out)
	}
	if _, ok := e.customizations(t)[color.KeyTitleBackground]; ok {
		t.Error("auto re-coloured a cleared workspace")
	}

	out = e.mustRun(t, "reset")
	if !strings.Contains(out, "Applied") {
		t.Errorf("expected reset to re-apply, got %q", out)
	}
}

func TestApply_Preset(t *testing.T) {
	e := newTestEnv(t, "")

	out := e.mustRun(t, "apply", "haze-blue")
	if !strings.Contains(out, "Haze Blue") {
		t.Errorf("expected preset name in output, got %q", out)
	}
	want, _ := color.DerivePalette("#93a2ba")
	if got := e.customizations(t)[color.KeyTitleBackground]; got != want.Title.Background {
		t.Errorf("expected %s, got %v", want.Title.Background, got)
	}

	e.mustRun(t, "apply", "Sage", "Green")
	want, _ = color.DerivePalette("#bccfbf")
	if got := e.customizations(t)[color.KeyStatusBackground]; got != want.Status.Background {
		t.Errorf("expected %s, got %v", want.Status.Background, got)
	}
}

func TestApply_InvalidWritesNothing(t *testing.T) {
	e := newTestEnv(t, "")

	_, err := e.run(t, "apply", "#12345")
	if !errors.Is(err, color.ErrInvalidColorFormat) {
		t.Fatalf("expected ErrInvalidColorFormat, got %v", err)
	}
	if _, err := os.Stat(e.settingsPath()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("settings file should not exist, stat err %v", err)
	}
}

func TestRandom(t *testing.T) {
	e := newTestEnv(t, "")
	e.mustRun(t, "random")

	got, _ := e.customizations(t)[color.KeyTitleBackground].(string)
	if !color.IsValid(got) {
		t.Errorf("expected a colour to be written, got %q", got)
	}
}

func TestDisableEnable(t *testing.T) {
	e := newTestEnv(t, "")
	e.mustRun(t, "auto")
	applied := e.customizations(t)

	e.mustRun(t, "disable")
	cfg, err := config.Load(e.config)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enabled {
		t.Error("expected enabled=false saved to config")
	}
	if cfg.Theme != config.ThemeDark {
		t.Errorf("other config values lost, theme=%q", cfg.Theme)
	}
	if len(e.customizations(t)) != 0 {
		t.Errorf("expected colours removed, got %v", e.customizations(t))
	}

	out := e.mustRun(t, "auto")
	if !strings.Contains(out, string(palette.SkipDisabled)) {
		t.Errorf("expected disabled skip, got %q", out)
	}

	e.mustRun(t, "enable")
	got := e.customizations(t)
	for key, value := range applied {
		if got[key] != value {
			t.Errorf("%s: expected %v after enable, got %v", key, value, got[key])
		}
	}
}

func TestIgnore(t *testing.T) {
	e := newTestEnv(t, "")
	e.mustRun(t, "ignore")

	out := e.mustRun(t, "auto")
	if !strings.Contains(out, string(palette.SkipIgnored)) {
		t.Errorf("expected ignored skip, got %q", out)
	}
	if _, err := os.Stat(e.settingsPath()); !errors.Is(err, os.ErrNotExist) {
		t.Error("ignored workspace got a settings file")
	}

	e.mustRun(t, "unignore", "MyProject")
	out = e.mustRun(t, "auto")
	if !strings.Contains(out, "Applied") {
		t.Errorf("expected apply after unignore, got %q", out)
	}
}

func TestIgnore_FromConfig(t *testing.T) {
	e := newTestEnv(t, `ignore_list = ["MyProject"]`)
	e.mustRun(t, "auto")
	if e.customizations(t) != nil {
		t.Error("ignored workspace was coloured")
	}
}

func TestRefinements(t *testing.T) {
	e := newTestEnv(t, "refinements = true")
	e.mustRun(t, "apply", "#123456")
	got := e.customizations(t)
	if len(got) != 8 {
		t.Fatalf("expected 8 keys with refinements, got %v", got)
	}
	if got[color.KeyStatusBorder] != "#ffffff33" {
		t.Errorf("unexpected status border %v", got[color.KeyStatusBorder])
	}
}

func TestStatus(t *testing.T) {
	e := newTestEnv(t, "")
	e.mustRun(t, "apply", "#123456")

	out := e.mustRun(t, "status", "--all")
	for _, want := range []string{"MyProject", palette.StateManuallySet.String(), "#1b4d80", "Known workspaces", e.workspace} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}

	e.mustRun(t, "clear")
	out = e.mustRun(t, "status")
	if !strings.Contains(out, palette.StateManuallyCleared.String()) {
		t.Errorf("expected manually cleared state:\n%s", out)
	}
	if strings.Contains(out, "Known workspaces") {
		t.Error("--all leaked from the previous run")
	}
}

func TestPresets(t *testing.T) {
	e := newTestEnv(t, "")

	out := e.mustRun(t, "presets")
	for _, p := range color.Catalog {
		if !strings.Contains(out, p.Name) {
			t.Errorf("preset %s missing", p.Name)
		}
	}

	out = e.mustRun(t, "presets", "--category", "classic", "--lang", "zh")
	for _, p := range color.InCategory(color.ClassicPremium) {
		if !strings.Contains(out, p.LocalName) {
			t.Errorf("classic preset %s missing", p.LocalName)
		}
	}
	if strings.Contains(out, string(color.MorandiDark)) {
		t.Error("category filter not applied")
	}

	out = e.mustRun(t, "presets", "--theme", "light")
	for _, p := range color.Catalog {
		if p.Polarity() == color.Dark && strings.Contains(out, p.Hex) {
			t.Errorf("dark preset %s listed for light theme", p.Hex)
		}
	}

	if _, err := e.run(t, "presets", "--category", "neon"); err == nil {
		t.Error("expected unknown category error")
	}
}

func TestFindCategory(t *testing.T) {
	tests := map[string]color.Category{
		"light":    color.MorandiLight,
		"Dark":     color.MorandiDark,
		"classic":  color.ClassicPremium,
		"dunhuang": color.ClassicPremium,
	}
	for name, want := range tests {
		got, err := findCategory(name)
		if err != nil || got != want {
			t.Errorf("%s: expected %s, got %s (%v)", name, want, got, err)
		}
	}
	for _, bad := range []string{"", "morandi", "&"} {
		if _, err := findCategory(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	e := newTestEnv(t, "")
	out := e.mustRun(t, "version")
	if !strings.Contains(out, "1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestMissingWorkspace(t *testing.T) {
	e := newTestEnv(t, "")
	e.workspace = filepath.Join(e.root, "nope")
	if _, err := e.run(t, "auto"); err == nil {
		t.Error("expected error for a missing workspace directory")
	}
}

func TestResolveWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "TestWorkspace")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	ws, err := resolveWorkspace(dir)
	if err != nil {
		t.Fatalf("resolveWorkspace: %v", err)
	}
	if ws.Name != "TestWorkspace" || ws.Key != dir {
		t.Errorf("unexpected workspace %+v", ws)
	}

	root, err := resolveWorkspace(string(filepath.Separator))
	if err != nil {
		t.Fatalf("resolveWorkspace(/): %v", err)
	}
	if root.Name != "" {
		t.Errorf("filesystem root should have no name, got %q", root.Name)
	}
}
