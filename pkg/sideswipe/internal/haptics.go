package internal

import (
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoHapticDevice indicates no rumble-capable haptic device was found.
var ErrNoHapticDevice = errors.New("no rumble-capable haptic device")

// RumbleEngine plays rumble feedback on the first haptic device SDL exposes.
// Most supported handhelds report exactly one rumble motor.
type RumbleEngine struct {
	device *sdl.Haptic
}

// OpenRumble scans SDL's haptic devices and opens the first one that
// supports simple rumble. The SDL haptic subsystem must be initialized.
func OpenRumble() (*RumbleEngine, error) {
	count, err := sdl.NumHaptics()
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		device, err := sdl.HapticOpen(i)
		if err != nil {
			GetInternalLogger().Debug("skipping haptic device", "index", i, "error", err)
			continue
		}
		if err := device.RumbleInit(); err != nil {
			GetInternalLogger().Debug("haptic device has no rumble", "index", i, "error", err)
			device.Close()
			continue
		}
		return &RumbleEngine{device: device}, nil
	}

	return nil, ErrNoHapticDevice
}

// Rumble plays a rumble of the given strength (0..1) and blocks until the
// effect has run its course, which is the engine's completion signal.
func (e *RumbleEngine) Rumble(strength float32, duration time.Duration) error {
	if err := e.device.RumblePlay(strength, uint32(duration.Milliseconds())); err != nil {
		return err
	}
	time.Sleep(duration)
	return nil
}

// Close releases the underlying haptic device.
func (e *RumbleEngine) Close() {
	if e.device != nil {
		e.device.Close()
		e.device = nil
	}
}
