package tui

// Color constants for the colorspace TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1E1B24" // Neutral dark card behind swatches
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Labels, titles, selected preset name
	ColorSecondaryText = "#B1B8C7" // Preset names, channel labels
	ColorDisabledText  = "#6D7383" // Inactive tabs, local names
	ColorPlaceholder   = "#B1B8C7" // Hex input placeholder
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#7C3AED" // Active tab, focused borders
	ColorAccentBright = "#A78BFA" // Cursor, current channel

	// State Colors
	ColorError   = "#EF4444" // Invalid hex
	ColorSuccess = "#22C55E" // Applied
	ColorWarning = "#F59E0B" // Skipped
)
