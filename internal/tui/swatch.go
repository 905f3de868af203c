package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/colorspace/internal/color"
)

// RenderSwatch renders a small block of hex with its contrast foreground as the label
func RenderSwatch(hex, label string, width int) string {
	fg, err := color.ContrastForeground(hex)
	if err != nil {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Padding(0, 1).
		Render(label)
}

// RenderPreview mocks the editor window: a title bar on top, an activity bar on
// the left and a status bar along the bottom, in the palette's colours.
func RenderPreview(p color.RolePalette, workspace string, width int) string {
	if width < 24 {
		width = 24
	}
	const activityWidth = 4
	const bodyHeight = 3

	title := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Title.Background)).
		Foreground(lipgloss.Color(p.Title.Foreground)).
		Width(width).
		Align(lipgloss.Center).
		Render(workspace)

	activity := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Activity.Background)).
		Foreground(lipgloss.Color(p.Activity.Foreground)).
		Width(activityWidth).
		Height(bodyHeight).
		Align(lipgloss.Center).
		Render("≡\n⌕\n⑂")

	body := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorCardBackground)).
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(width - activityWidth).
		Height(bodyHeight).
		Padding(0, 1).
		Render(p.Base)

	status := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Status.Background)).
		Foreground(lipgloss.Color(p.Status.Foreground)).
		Width(width).
		Padding(0, 1).
		Render(fmt.Sprintf("title %s · status %s", p.Title.Background, p.Status.Background))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, activity, body),
		status,
	)
}

// RenderPresetTable lists presets as swatch rows grouped by category
func RenderPresetTable(presets []color.Preset, lang color.Language) string {
	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var current color.Category
	for i, p := range presets {
		if i == 0 || p.Category != current {
			if i > 0 {
				b.WriteString("\n")
			}
			current = p.Category
			b.WriteString(headerStyle.Render(string(p.Category)))
			b.WriteString("\n")
		}
		b.WriteString(RenderSwatch(p.Hex, p.Hex, 10))
		b.WriteString(" ")
		b.WriteString(p.DisplayName(lang))
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(p.Slug() + " · " + p.Polarity().String()))
		b.WriteString("\n")
	}
	return b.String()
}
