package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/colorspace/internal/color"
)

// RunPicker starts the interactive picker and returns the chosen colour.
// ok is false when the user cancelled.
func RunPicker(workspace, initial string, lang color.Language) (hex string, ok bool, err error) {
	model := NewPickerModel(workspace, initial, lang)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	if m, isPicker := finalModel.(PickerModel); isPicker {
		hex, ok = m.Chosen()
		return hex, ok, nil
	}
	return "", false, nil
}
