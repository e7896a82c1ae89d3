package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconHeart    = "❤"
	IconLanguage = "🌐"
)

// Window sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 800
)

// Results grid sizing. Cells reserve the full thumbnail bounding box so rows
// stay aligned when images have different aspect ratios.
const (
	CellImageWidth  float32 = 300
	CellImageHeight float32 = 200
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)
