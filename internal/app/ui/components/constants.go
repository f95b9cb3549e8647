package components

import (
	"time"

	"veil/internal/config"
)

// UI timing constants
const (
	// UITickInterval is the animation frame rate shared by every indicator item
	UITickInterval = config.FrameInterval

	// UITicksPerSecond is the derived FPS for spring animations
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// DefaultViewportWidth is used before the first window size message arrives
const DefaultViewportWidth = 80
