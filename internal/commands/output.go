package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/colorspace/internal/color"
	"github.com/balkashynov/colorspace/internal/palette"
	"github.com/balkashynov/colorspace/internal/tui"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorDisabledText))
)

// printPalette shows the three role shades of p
func printPalette(w io.Writer, p color.RolePalette) {
	fmt.Fprintf(w, "  %s title\n", tui.RenderSwatch(p.Title.Background, p.Title.Background, 10))
	fmt.Fprintf(w, "  %s activity\n", tui.RenderSwatch(p.Activity.Background, p.Activity.Background, 10))
	fmt.Fprintf(w, "  %s status\n", tui.RenderSwatch(p.Status.Background, p.Status.Background, 10))
}

func printApplied(w io.Writer, ws palette.Workspace, p color.RolePalette) {
	label := p.Base
	if preset, ok := color.FindPreset(p.Base); ok {
		label = fmt.Sprintf("%s (%s)", p.Base, preset.Name)
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Applied %s to %s", label, ws.Name)))
	printPalette(w, p)
}

func printOutcome(w io.Writer, ws palette.Workspace, out palette.Outcome) {
	if out.Applied {
		printApplied(w, ws, out.Palette)
		return
	}
	if out.Skipped == palette.SkipNone {
		return
	}
	name := ws.Name
	if name == "" {
		name = "workspace"
	}
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("Skipped %s: %s", name, out.Skipped)))
}
