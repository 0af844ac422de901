package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLike     = "👍"
	IconReact    = "❤️"
	IconEdit     = "✏️"
	IconDelete   = "🗑️"
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconClose    = "×"
	IconAttach   = "📎"
	IconRetry    = "↻"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CountLabelFormat   = "%s %d"
)

// Layout sizing
const (
	AvatarSizeSmall  float32 = 36
	AvatarSizeMedium float32 = 48
	AvatarSizeLarge  float32 = 96

	PostImageMaxHeight float32 = 240

	FormMinWidth float32 = 380
)

// Dialog sizing
const (
	PreferencesDialogWidth  float32 = 480
	PreferencesDialogHeight float32 = 380
)

// Input limits
const (
	MaxPostLength = 500
)
