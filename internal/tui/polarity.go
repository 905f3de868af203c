package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/colorspace/internal/color"
)

// TerminalTheme answers the palette manager's theme query from the terminal
// background, unless the user pinned a theme in config.
type TerminalTheme struct {
	// Override is "dark", "light" or anything else for auto-detection
	Override string
	// detect is swapped out in tests
	detect func() bool
}

// NewTerminalTheme creates a theme query with the given config override
func NewTerminalTheme(override string) TerminalTheme {
	return TerminalTheme{Override: override, detect: lipgloss.HasDarkBackground}
}

// Polarity returns Dark when the terminal background is dark
func (t TerminalTheme) Polarity() color.Polarity {
	if p, err := color.ParsePolarity(t.Override); err == nil {
		return p
	}
	detect := t.detect
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}
	if detect() {
		return color.Dark
	}
	return color.Light
}
