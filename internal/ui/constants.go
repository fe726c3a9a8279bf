package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconSave     = "💾"
	IconQuestion = "💬"
	IconAnswer   = "🤖"
	IconVideo    = "🎬"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	HistoryItemFormat  = "#%d" + MiddleDotSeparator + "%s"
)

// Layout sizing
const (
	TranscriptMinHeight float32 = 220
	OverlayWidth        float32 = 320
	OverlayHeight       float32 = 90
	ThumbnailWidth      float32 = 160
	ThumbnailHeight     float32 = 90

	// Touch target sizes (iOS/Android guidelines)
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 60
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastSpacing  float32 = 8
	ToastAutoHide         = 5 * time.Second
)
