package color

import (
	"fmt"
	"math"
	"strings"
)

// Workbench colour keys owned by the role palette.
const (
	KeyTitleBackground            = "titleBar.activeBackground"
	KeyTitleForeground            = "titleBar.activeForeground"
	KeyActivityBackground         = "activityBar.background"
	KeyActivityForeground         = "activityBar.foreground"
	KeyStatusBackground           = "statusBar.background"
	KeyStatusForeground           = "statusBar.foreground"
	KeyActivityInactiveForeground = "activityBar.inactiveForeground"
	KeyStatusBorder               = "statusBar.border"
)

// Opacity suffixes appended to the status foreground for the refinement keys.
const (
	inactiveOpacity = "99"
	borderOpacity   = "33"
)

const (
	lightnessStep      = 10
	titleLightnessMax  = 98
	statusLightnessMin = 10
)

// BackgroundKeys are the keys whose presence means somebody already coloured the workspace.
var BackgroundKeys = []string{
	KeyTitleBackground,
	KeyActivityBackground,
	KeyStatusBackground,
}

// PaletteKeys lists every key a palette may write, refinements included.
var PaletteKeys = []string{
	KeyTitleBackground,
	KeyTitleForeground,
	KeyActivityBackground,
	KeyActivityForeground,
	KeyStatusBackground,
	KeyStatusForeground,
	KeyActivityInactiveForeground,
	KeyStatusBorder,
}

// Polarity is whether a colour or theme reads as light or dark.
type Polarity int

const (
	Dark Polarity = iota
	Light
)

func (p Polarity) String() string {
	if p == Light {
		return "light"
	}
	return "dark"
}

// ParsePolarity accepts "dark" or "light".
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown polarity %q, use dark or light", s)
}

// PolarityOf classifies a colour by its contrast foreground: colours that need
// black text are light.
func PolarityOf(hex string) (Polarity, error) {
	fg, err := ContrastForeground(hex)
	if err != nil {
		return Dark, err
	}
	if fg == Black {
		return Light, nil
	}
	return Dark, nil
}

// Shade is one background with its legible foreground.
type Shade struct {
	Background string
	Foreground string
}

// RolePalette is the set of colours derived from one base colour.
type RolePalette struct {
	Base     string
	Title    Shade
	Activity Shade
	Status   Shade
}

// DerivePalette lightens the base by 10 points for the title bar (capped at 98)
// and darkens it by 10 points for the activity and status bars (floored at 10).
// Hue and saturation are kept for both shades.
func DerivePalette(hex string) (RolePalette, error) {
	base, err := Canonicalize(hex)
	if err != nil {
		return RolePalette{}, err
	}
	hsl, err := HexToHSL(base)
	if err != nil {
		return RolePalette{}, err
	}

	title := shadeOf(HSLToHex(hsl.H, hsl.S, math.Min(hsl.L+lightnessStep, titleLightnessMax)))
	status := shadeOf(HSLToHex(hsl.H, hsl.S, math.Max(hsl.L-lightnessStep, statusLightnessMin)))

	return RolePalette{
		Base:     base,
		Title:    title,
		Activity: status,
		Status:   status,
	}, nil
}

func shadeOf(background string) Shade {
	c, _ := parse(background)
	return Shade{Background: background, Foreground: contrastFor(c)}
}

// Entries returns the palette as workbench colour keys. The refinement keys are
// only included when refinements is set.
func (p RolePalette) Entries(refinements bool) map[string]string {
	entries := map[string]string{
		KeyTitleBackground:    p.Title.Background,
		KeyTitleForeground:    p.Title.Foreground,
		KeyActivityBackground: p.Activity.Background,
		KeyActivityForeground: p.Activity.Foreground,
		KeyStatusBackground:   p.Status.Background,
		KeyStatusForeground:   p.Status.Foreground,
	}
	if refinements {
		entries[KeyActivityInactiveForeground] = p.Status.Foreground + inactiveOpacity
		entries[KeyStatusBorder] = p.Status.Foreground + borderOpacity
	}
	return entries
}
