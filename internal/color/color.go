// Package color holds the pure colour maths behind colorspace: hex parsing,
// HSL/HSV conversion, contrast foregrounds, role palette derivation and the
// deterministic and random base colour generators.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned for anything that is not 3 or 6 hex digits
// with an optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid color format")

const (
	Black = "#000000"
	White = "#ffffff"
)

var hexPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// HSL is hue in [0,360), saturation and lightness in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// HSV is hue in [0,360), saturation and value in [0,100].
type HSV struct {
	H float64
	S float64
	V float64
}

// Canonicalize validates hex and returns it as '#' followed by six lowercase digits.
// Three digit shorthand is expanded by doubling each digit.
func Canonicalize(hex string) (string, error) {
	raw := strings.TrimPrefix(hex, "#")
	if !hexPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	raw = strings.ToLower(raw)
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	return "#" + raw, nil
}

// IsValid reports whether hex passes the same format rule as Canonicalize.
func IsValid(hex string) bool {
	_, err := Canonicalize(hex)
	return err == nil
}

func parse(hex string) (colorful.Color, error) {
	canonical, err := Canonicalize(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(canonical)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrInvalidColorFormat, err)
	}
	return c, nil
}

// HexToHSL converts a hex colour to HSL. Achromatic colours get hue and saturation 0.
func HexToHSL(hex string) (HSL, error) {
	c, err := parse(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}, nil
}

// HSLToHex converts HSL back to a canonical hex colour. Out of range components
// are wrapped (hue) or clamped (saturation, lightness).
func HSLToHex(h, s, l float64) string {
	return colorful.Hsl(normalizeHue(h), clampPercent(s)/100, clampPercent(l)/100).Clamped().Hex()
}

// HexToHSV converts a hex colour to HSV.
func HexToHSV(hex string) (HSV, error) {
	c, err := parse(hex)
	if err != nil {
		return HSV{}, err
	}
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}, nil
}

// HSVToHex converts HSV back to a canonical hex colour.
func HSVToHex(h, s, v float64) string {
	return colorful.Hsv(normalizeHue(h), clampPercent(s)/100, clampPercent(v)/100).Clamped().Hex()
}

// Hex returns the canonical string for an HSL triple.
func (c HSL) Hex() string { return HSLToHex(c.H, c.S, c.L) }

// Hex returns the canonical string for an HSV triple.
func (c HSV) Hex() string { return HSVToHex(c.H, c.S, c.V) }

// Luma is the 0.299/0.587/0.114 weighted brightness over 0-255 channels.
func Luma(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}
	return luma(c), nil
}

func luma(c colorful.Color) float64 {
	r, g, b := c.RGB255()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// ContrastForeground returns black for backgrounds with luma >= 128 and white
// otherwise. Every background handed to the editor is paired with this value.
func ContrastForeground(hex string) (string, error) {
	c, err := parse(hex)
	if err != nil {
		return "", err
	}
	return contrastFor(c), nil
}

func contrastFor(c colorful.Color) string {
	if luma(c) >= 128 {
		return Black
	}
	return White
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
