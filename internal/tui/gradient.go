package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/colorspace/internal/color"
)

// Channel is one axis of the HSV picker
type Channel int

const (
	ChannelHue Channel = iota
	ChannelSaturation
	ChannelValue
)

func (c Channel) String() string {
	switch c {
	case ChannelHue:
		return "Hue"
	case ChannelSaturation:
		return "Saturation"
	default:
		return "Value"
	}
}

// Max is the upper bound of the channel's range
func (c Channel) Max() float64 {
	if c == ChannelHue {
		return 360
	}
	return 100
}

// Step is how far one arrow press moves the channel
func (c Channel) Step() float64 {
	if c == ChannelHue {
		return 5
	}
	return 2
}

// supportsTrueColor detects if terminal supports 24-bit colour
func supportsTrueColor() bool {
	colorTerm := os.Getenv("COLORTERM")
	return colorTerm == "truecolor" || colorTerm == "24bit"
}

// GradientBar renders one HSV channel as a row of coloured cells with a marker
// under the current value.
type GradientBar struct {
	Width     int
	TrueColor bool
}

// NewGradientBar creates a bar that uses truecolor escapes when the terminal has them
func NewGradientBar(width int) GradientBar {
	return GradientBar{Width: width, TrueColor: supportsTrueColor()}
}

// Stops returns the hex colour of every cell of the bar for ch, holding the
// other two channels at hsv.
func (g GradientBar) Stops(ch Channel, hsv color.HSV) []string {
	width := g.Width
	if width < 2 {
		width = 2
	}
	stops := make([]string, width)
	for i := range stops {
		t := float64(i) / float64(width-1)
		c := hsv
		switch ch {
		case ChannelHue:
			// Stop just short of 360 so the last cell is not red again
			c.H = t * 359
		case ChannelSaturation:
			c.S = t * 100
		case ChannelValue:
			c.V = t * 100
		}
		stops[i] = c.Hex()
	}
	return stops
}

// MarkerIndex is the cell closest to the current value of ch
func (g GradientBar) MarkerIndex(ch Channel, hsv color.HSV) int {
	width := g.Width
	if width < 2 {
		width = 2
	}
	var v float64
	switch ch {
	case ChannelHue:
		v = hsv.H / 359
	case ChannelSaturation:
		v = hsv.S / 100
	default:
		v = hsv.V / 100
	}
	idx := int(v*float64(width-1) + 0.5)
	if idx < 0 {
		return 0
	}
	if idx >= width {
		return width - 1
	}
	return idx
}

// Render draws the bar and a marker line below it
func (g GradientBar) Render(ch Channel, hsv color.HSV) string {
	stops := g.Stops(ch, hsv)

	var bar strings.Builder
	if g.TrueColor {
		for _, hex := range stops {
			c, err := colorful.Hex(hex)
			if err != nil {
				bar.WriteByte(' ')
				continue
			}
			r, gr, b := c.RGB255()
			bar.WriteString(fmt.Sprintf("\033[48;2;%d;%d;%dm ", r, gr, b))
		}
		// Reset color
		bar.WriteString("\033[0m")
	} else {
		// Let lipgloss degrade to whatever the terminal supports
		for _, hex := range stops {
			bar.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
		}
	}

	marker := strings.Repeat(" ", g.MarkerIndex(ch, hsv)) + "▲"
	return bar.String() + "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(marker)
}
