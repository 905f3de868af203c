package tui

import (
	"strings"
	"testing"

	"github.com/balkashynov/colorspace/internal/color"
)

func TestGradientBar_Stops(t *testing.T) {
	bar := GradientBar{Width: 11}
	hsv := color.HSV{H: 200, S: 50, V: 80}

	sat := bar.Stops(ChannelSaturation, hsv)
	if len(sat) != 11 {
		t.Fatalf("expected 11 stops, got %d", len(sat))
	}
	if want := (color.HSV{H: 200, S: 0, V: 80}).Hex(); sat[0] != want {
		t.Errorf("first saturation stop: expected %s, got %s", want, sat[0])
	}
	if want := (color.HSV{H: 200, S: 100, V: 80}).Hex(); sat[10] != want {
		t.Errorf("last saturation stop: expected %s, got %s", want, sat[10])
	}

	val := bar.Stops(ChannelValue, hsv)
	if val[0] != color.Black {
		t.Errorf("value bar should start at black, got %s", val[0])
	}

	hue := bar.Stops(ChannelHue, color.HSV{S: 100, V: 100})
	if hue[0] != "#ff0000" {
		t.Errorf("hue bar should start at red, got %s", hue[0])
	}
	if hue[10] == hue[0] {
		t.Error("hue bar should not wrap back to its first colour")
	}
}

func TestGradientBar_MarkerIndex(t *testing.T) {
	bar := GradientBar{Width: 11}
	tests := []struct {
		ch   Channel
		hsv  color.HSV
		want int
	}{
		{ChannelSaturation, color.HSV{S: 0}, 0},
		{ChannelSaturation, color.HSV{S: 50}, 5},
		{ChannelValue, color.HSV{V: 100}, 10},
		{ChannelHue, color.HSV{H: 359}, 10},
		{ChannelHue, color.HSV{H: 0}, 0},
	}
	for _, tt := range tests {
		if got := bar.MarkerIndex(tt.ch, tt.hsv); got != tt.want {
			t.Errorf("%s %+v: expected %d, got %d", tt.ch, tt.hsv, tt.want, got)
		}
	}
}

func TestGradientBar_RenderTrueColor(t *testing.T) {
	bar := GradientBar{Width: 4, TrueColor: true}
	out := bar.Render(ChannelValue, color.HSV{H: 0, S: 100, V: 100})
	if !strings.Contains(out, "\033[48;2;0;0;0m") {
		t.Errorf("expected truecolor escape for black, got %q", out)
	}
	if !strings.Contains(out, "▲") {
		t.Error("marker missing")
	}
}

func TestTerminalTheme(t *testing.T) {
	dark := TerminalTheme{detect: func() bool { return true }}
	light := TerminalTheme{detect: func() bool { return false }}

	if dark.Polarity() != color.Dark {
		t.Error("dark background should select dark presets")
	}
	if light.Polarity() != color.Light {
		t.Error("light background should select light presets")
	}

	pinned := TerminalTheme{Override: "light", detect: func() bool { return true }}
	if pinned.Polarity() != color.Light {
		t.Error("config override should beat detection")
	}
	auto := TerminalTheme{Override: "auto", detect: func() bool { return false }}
	if auto.Polarity() != color.Light {
		t.Error("auto should fall through to detection")
	}
}

func TestRenderPreview(t *testing.T) {
	p, err := color.DerivePalette("#123456")
	if err != nil {
		t.Fatal(err)
	}
	out := RenderPreview(p, "MyProject", 40)
	for _, want := range []string{"MyProject", "#1b4d80", "#091a2c"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestRenderPresetTable(t *testing.T) {
	out := RenderPresetTable(color.Catalog, color.English)
	for _, cat := range color.Categories {
		if strings.Count(out, string(cat)) != 1 {
			t.Errorf("expected one header for %s", cat)
		}
	}
	if !strings.Contains(out, "haze-blue") {
		t.Error("expected preset slugs in table")
	}
}
