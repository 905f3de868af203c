package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/colorspace/internal/color"
)

// PickerMode is which panel of the picker has focus
type PickerMode int

const (
	ModePresets PickerMode = iota
	ModeCreative
	ModeHex
)

func (m PickerMode) String() string {
	switch m {
	case ModePresets:
		return "Presets"
	case ModeCreative:
		return "Creative"
	default:
		return "Hex"
	}
}

var pickerModes = []PickerMode{ModePresets, ModeCreative, ModeHex}

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Mode    key.Binding
	Random  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less / prev category")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more / next category")),
		Mode:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch mode")),
		Random:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc/q", "cancel")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Confirm, k.Cancel, k.Help}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Mode, k.Random, k.Confirm, k.Cancel, k.Help},
	}
}

// PickerModel is the interactive colour picker: browse presets by category,
// tune a colour on HSV sliders, or type a hex value.
type PickerModel struct {
	width  int
	height int

	workspace string
	lang      color.Language
	mode      PickerMode

	// Presets panel
	category int // index into color.Categories
	selected int // index within the category

	// Creative panel
	hsv     color.HSV
	channel Channel
	bar     GradientBar

	// Hex panel
	input    textinput.Model
	inputErr string

	keys   pickerKeyMap
	help   help.Model
	random func() string

	chosen    string
	cancelled bool
}

// NewPickerModel creates a picker for workspace starting from initial, which may be empty
func NewPickerModel(workspace, initial string, lang color.Language) PickerModel {
	input := textinput.New()
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.Width = 10
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))

	m := PickerModel{
		workspace: workspace,
		lang:      lang,
		mode:      ModePresets,
		bar:       NewGradientBar(36),
		input:     input,
		keys:      defaultPickerKeys(),
		help:      help.New(),
		random:    color.RandomColor,
	}

	start := color.Catalog[0].Hex
	if canonical, err := color.Canonicalize(initial); err == nil {
		start = canonical
		// A custom colour opens on the sliders
		if _, ok := color.FindPreset(canonical); !ok {
			m.mode = ModeCreative
		}
	}
	m.setCurrent(start)
	return m
}

// WithRandom replaces the random colour source
func (m PickerModel) WithRandom(random func() string) PickerModel {
	m.random = random
	return m
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Chosen returns the confirmed colour, if any
func (m PickerModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != "" && !m.cancelled
}

// Cancelled reports whether the user left without choosing
func (m PickerModel) Cancelled() bool {
	return m.cancelled
}

// Mode returns the focused panel
func (m PickerModel) Mode() PickerMode {
	return m.mode
}

// Current is the colour the preview shows right now
func (m PickerModel) Current() string {
	switch m.mode {
	case ModeCreative:
		return m.hsv.Hex()
	case ModeHex:
		if hex, err := color.Canonicalize(m.input.Value()); err == nil {
			return hex
		}
		return m.hsv.Hex()
	default:
		return m.selectedPreset().Hex
	}
}

func (m PickerModel) categoryPresets() []color.Preset {
	return color.InCategory(color.Categories[m.category])
}

func (m PickerModel) selectedPreset() color.Preset {
	presets := m.categoryPresets()
	if len(presets) == 0 {
		return color.Catalog[0]
	}
	return presets[m.selected]
}

// setCurrent syncs every panel to hex. Presets select the matching entry when there is one.
func (m *PickerModel) setCurrent(hex string) {
	if hsv, err := color.HexToHSV(hex); err == nil {
		m.hsv = hsv
	}
	m.input.SetValue(hex)
	m.inputErr = ""

	preset, ok := color.FindPreset(hex)
	if !ok {
		return
	}
	for ci, cat := range color.Categories {
		for pi, p := range color.InCategory(cat) {
			if p.Hex == preset.Hex {
				m.category, m.selected = ci, pi
				return
			}
		}
	}
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.confirm()

		case msg.String() == "esc" || msg.String() == "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Mode):
			return m.switchMode(msg.String() == "shift+tab")
		}

		// Typing goes to the hex field
		if m.mode == ModeHex {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.inputErr = ""
			if hex, err := color.Canonicalize(m.input.Value()); err == nil {
				if hsv, err := color.HexToHSV(hex); err == nil {
					m.hsv = hsv
				}
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Random):
			m.setCurrent(m.random())
			return m, nil
		}

		if m.mode == ModeCreative {
			return m.updateCreative(msg), nil
		}
		return m.updatePresets(msg), nil
	}

	return m, nil
}

func (m PickerModel) confirm() (tea.Model, tea.Cmd) {
	if m.mode == ModeHex {
		hex, err := color.Canonicalize(m.input.Value())
		if err != nil {
			m.inputErr = "Enter 3 or 6 hex digits, e.g. #1b4d80"
			return m, nil
		}
		m.chosen = hex
		return m, tea.Quit
	}
	m.chosen = m.Current()
	return m, tea.Quit
}

// switchMode cycles panels, carrying the current colour along
func (m PickerModel) switchMode(backwards bool) (tea.Model, tea.Cmd) {
	current := m.Current()

	step := 1
	if backwards {
		step = len(pickerModes) - 1
	}
	m.mode = pickerModes[(int(m.mode)+step)%len(pickerModes)]

	if m.mode == ModeCreative || m.mode == ModeHex {
		if hsv, err := color.HexToHSV(current); err == nil {
			m.hsv = hsv
		}
	}
	if m.mode == ModeHex {
		m.input.SetValue(current)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

func (m PickerModel) updatePresets(msg tea.KeyMsg) PickerModel {
	presets := m.categoryPresets()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(presets)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Left):
		m.category = (m.category + len(color.Categories) - 1) % len(color.Categories)
		m.selected = clampIndex(m.selected, len(m.categoryPresets()))
	case key.Matches(msg, m.keys.Right):
		m.category = (m.category + 1) % len(color.Categories)
		m.selected = clampIndex(m.selected, len(m.categoryPresets()))
	}
	return m
}

func (m PickerModel) updateCreative(msg tea.KeyMsg) PickerModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.channel > ChannelHue {
			m.channel--
		}
	case key.Matches(msg, m.keys.Down):
		if m.channel < ChannelValue {
			m.channel++
		}
	case key.Matches(msg, m.keys.Left):
		m.adjust(-m.channel.Step())
	case key.Matches(msg, m.keys.Right):
		m.adjust(m.channel.Step())
	}
	return m
}

// adjust moves the focused channel by delta. Hue wraps, saturation and value clamp.
func (m *PickerModel) adjust(delta float64) {
	switch m.channel {
	case ChannelHue:
		h := m.hsv.H + delta
		for h < 0 {
			h += 360
		}
		for h >= 360 {
			h -= 360
		}
		m.hsv.H = h
	case ChannelSaturation:
		m.hsv.S = clampFloat(m.hsv.S+delta, 0, 100)
	case ChannelValue:
		m.hsv.V = clampFloat(m.hsv.V+delta, 0, 100)
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the TUI
func (m PickerModel) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))

	var b strings.Builder
	b.WriteString(headerStyle.Render("colorspace"))
	if m.workspace != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(" · " + m.workspace))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeCreative:
		b.WriteString(m.renderCreative())
	case ModeHex:
		b.WriteString(m.renderHex())
	default:
		b.WriteString(m.renderPresets())
	}
	b.WriteString("\n\n")

	if p, err := color.DerivePalette(m.Current()); err == nil {
		b.WriteString(RenderPreview(p, m.workspace, 40))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
	return card.Render(b.String())
}

func (m PickerModel) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Padding(0, 1)

	tabs := make([]string, len(pickerModes))
	for i, mode := range pickerModes {
		if mode == m.mode {
			tabs[i] = active.Render(mode.String())
		} else {
			tabs[i] = inactive.Render(mode.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m PickerModel) renderPresets() string {
	var b strings.Builder
	category := color.Categories[m.category]
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).
		Render(fmt.Sprintf("‹ %s ›", category)))
	b.WriteString("\n\n")

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	for i, p := range m.categoryPresets() {
		cursor := "  "
		name := nameStyle.Render(p.DisplayName(m.lang))
		if i == m.selected {
			cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▸ ")
			name = selectedStyle.Render(p.DisplayName(m.lang))
		}
		b.WriteString(cursor)
		b.WriteString(RenderSwatch(p.Hex, p.Hex, 10))
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m PickerModel) renderCreative() string {
	labelStyle := lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color(ColorSecondaryText))
	focusedStyle := labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	values := []float64{m.hsv.H, m.hsv.S, m.hsv.V}
	rows := make([]string, 0, 3)
	for _, ch := range []Channel{ChannelHue, ChannelSaturation, ChannelValue} {
		style := labelStyle
		if ch == m.channel {
			style = focusedStyle
		}
		label := style.Render(fmt.Sprintf("%s %3.0f", ch, values[ch]))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, m.bar.Render(ch, m.hsv)))
	}
	rows = append(rows, RenderSwatch(m.hsv.Hex(), m.hsv.Hex(), 12))
	return strings.Join(rows, "\n")
}

func (m PickerModel) renderHex() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if m.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.inputErr))
	} else if hex, err := color.Canonicalize(m.input.Value()); err == nil {
		b.WriteString("  ")
		b.WriteString(RenderSwatch(hex, hex, 10))
	}
	return b.String()
}
