package sideswipe

import (
	"time"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// Haptics plays tactile feedback for an action activation. Play blocks until
// the feedback completes; the action handler runs after it returns. Failures
// are logged and swallowed by the button, never surfaced.
type Haptics interface {
	Play(intensity HapticIntensity) error
}

// NoopHaptics discards all feedback requests. Rows fall back to it when no
// rumble device is available.
type NoopHaptics struct{}

func (NoopHaptics) Play(HapticIntensity) error { return nil }

// rumbleHaptics maps intensity levels onto the device rumble motor.
type rumbleHaptics struct {
	engine *internal.RumbleEngine
}

func (h *rumbleHaptics) Play(intensity HapticIntensity) error {
	strength, duration := rumbleParams(intensity)
	return h.engine.Rumble(strength, duration)
}

func rumbleParams(intensity HapticIntensity) (float32, time.Duration) {
	switch intensity {
	case HapticHeavy:
		return constants.RumbleHeavyStrength, constants.RumbleHeavyDuration
	case HapticMedium:
		return constants.RumbleMediumStrength, constants.RumbleMediumDuration
	default:
		return constants.RumbleLightStrength, constants.RumbleLightDuration
	}
}
