// Package constants defines shared constants and default configuration values
// used throughout the sideswipe library.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// ThemePathEnvVar is the environment variable name for a custom theme file path.
const ThemePathEnvVar = "SIDESWIPE_THEME"

// TouchDeviceEnvVar is the environment variable name for a custom touch
// input device path (e.g. /dev/input/event3).
const TouchDeviceEnvVar = "SIDESWIPE_TOUCH_DEVICE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Gesture defaults. A release past 80 points of (frictioned) travel commits
// the row open, and raw drag translation is divided by a friction of 2.
const (
	DefaultThreshold float32 = 80
	DefaultFriction  float32 = 2
)

// Layout defaults.
const (
	DefaultActionWidth int32   = 120 // width of one revealed action button
	DefaultIconSize    int32   = 40  // rendered icon edge length
	DefaultTapSlop     float32 = 10  // max pointer travel for a press to count as a tap
	LabelIconGap       int32   = 6   // vertical gap between an icon and its label
	ButtonPadding      int32   = 8   // inset between a button's fill and its content
)

// Settle spring tuning. The spring is critically damped so the row never
// oscillates around its rest position.
const (
	SpringFrequency float64 = 9.0
	SpringDamping   float64 = 1.0
)

// Font defaults.
const (
	DefaultLabelFontSize = 18
	DefaultIconFontSize  = 40
)

// Haptic rumble mapping per intensity level.
const (
	RumbleLightStrength  float32 = 0.3
	RumbleMediumStrength float32 = 0.6
	RumbleHeavyStrength  float32 = 1.0

	RumbleLightDuration  = 30 * time.Millisecond
	RumbleMediumDuration = 50 * time.Millisecond
	RumbleHeavyDuration  = 80 * time.Millisecond
)
