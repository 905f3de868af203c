package color

import (
	"math/rand/v2"
	"unicode/utf16"
)

const (
	fallbackSaturationMin  = 60
	fallbackSaturationSpan = 20
	fallbackLightnessMin   = 40
	fallbackLightnessSpan  = 20
)

// Hash is the left-shift-5 polynomial rolling hash over the UTF-16 code units of
// seed. It is confined to int32 and wraps on overflow; results must not depend
// on the platform's int size.
func Hash(seed string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}
	return hash
}

// DeterministicColor picks a stable base colour for seed. Presets whose polarity
// matches the theme are preferred; the HSL synthesis is used when none match.
func DeterministicColor(seed string, polarity Polarity) string {
	return deterministicFrom(seed, Matching(Catalog, polarity))
}

func deterministicFrom(seed string, candidates []Preset) string {
	hash := Hash(seed)
	if n := int64(len(candidates)); n > 0 {
		return candidates[abs64(int64(hash))%n].Hex
	}
	return synthesize(hash)
}

// synthesize keeps saturation in [60,80) and lightness in [40,60).
func synthesize(hash int32) string {
	h := abs64(int64(hash % 360))
	s := fallbackSaturationMin + abs64(int64((hash>>8)%fallbackSaturationSpan))
	l := fallbackLightnessMin + abs64(int64((hash>>16)%fallbackLightnessSpan))
	return HSLToHex(float64(h), float64(s), float64(l))
}

// Source is the random draw used by RandomFrom. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomColor draws a uniformly random preset, ignoring theme polarity.
func RandomColor() string {
	return RandomFrom(globalSource{}, Catalog)
}

// RandomFrom draws from presets, or synthesises a colour in the same ranges as
// DeterministicColor when presets is empty.
func RandomFrom(src Source, presets []Preset) string {
	if len(presets) > 0 {
		return presets[src.IntN(len(presets))].Hex
	}
	h := src.IntN(360)
	s := fallbackSaturationMin + src.IntN(fallbackSaturationSpan)
	l := fallbackLightnessMin + src.IntN(fallbackLightnessSpan)
	return HSLToHex(float64(h), float64(s), float64(l))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
