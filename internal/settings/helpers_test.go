package settings

import (
	"context"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/palette"
)

type memFlags map[string]bool

func (f memFlags) ManuallyCleared(_ context.Context, key string) (bool, error) { return f[key], nil }

func (f memFlags) SetManuallyCleared(_ context.Context, key string, cleared bool) error {
	f[key] = cleared
	return nil
}

type darkTheme struct{}

func (darkTheme) Polarity() color.Polarity { return color.Dark }

type staticSettings struct {
	settings palette.Settings
}

func (s staticSettings) Settings() (palette.Settings, error) { return s.settings, nil }
func (s staticSettings) SetEnabled(bool) error                { return nil }
